package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/petcare-basedata/internal/config"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
	"github.com/heartmarshall/petcare-basedata/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// actorResolver picks the name written to audit fields for a request.
type actorResolver struct {
	header       string
	source       string
	defaultActor string
}

func newActorResolver(cfg config.BaseDataConfig) actorResolver {
	return actorResolver{
		header:       cfg.ActorHeader,
		source:       cfg.ActorSource,
		defaultActor: cfg.DefaultActor,
	}
}

// resolve returns the authenticated username when the source is the
// principal, otherwise the actor header. Both fall back to the default actor.
func (a actorResolver) resolve(r *http.Request) string {
	if a.source == config.ActorSourcePrincipal {
		if p, ok := ctxutil.PrincipalFromCtx(r.Context()); ok && p.Username != "" {
			return p.Username
		}
		return a.defaultActor
	}
	if a.header != "" {
		if v := strings.TrimSpace(r.Header.Get(a.header)); v != "" {
			return v
		}
	}
	return a.defaultActor
}
