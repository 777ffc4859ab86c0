package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

type seedValue struct {
	code, name string
	order      int
	extra      map[string]any
}

type seedDict struct {
	code, name string
	level      int
	parent     string
	fixed      bool
	values     []seedValue
}

// commonDictionaries mirrors migrations/00003_seed_common_dicts.sql.
var commonDictionaries = []seedDict{
	{code: "pet_species", name: "Pet species", level: 1, fixed: true, values: []seedValue{
		{"dog", "Dog", 1, nil}, {"cat", "Cat", 2, nil}, {"other", "Other", 9, nil},
	}},
	{code: "pet_breed", name: "Pet breed", level: 2, parent: "pet_species", values: []seedValue{
		{"golden_retriever", "Golden Retriever", 1, map[string]any{"species": "dog"}},
		{"beagle", "Beagle", 2, map[string]any{"species": "dog"}},
		{"corgi", "Corgi", 3, map[string]any{"species": "dog"}},
		{"british_shorthair", "British Shorthair", 1, map[string]any{"species": "cat"}},
		{"ragdoll", "Ragdoll", 2, map[string]any{"species": "cat"}},
	}},
	{code: "pet_gender", name: "Pet gender", level: 1, fixed: true, values: []seedValue{
		{"male", "Male", 1, nil}, {"female", "Female", 2, nil}, {"unknown", "Unknown", 3, nil},
	}},
	{code: "pet_size", name: "Pet size", level: 1, fixed: true, values: []seedValue{
		{"small", "Small", 1, map[string]any{"max_kg": float64(10)}},
		{"medium", "Medium", 2, map[string]any{"max_kg": float64(25)}},
		{"large", "Large", 3, map[string]any{"max_kg": float64(45)}},
	}},
	{code: "medical_service", name: "Medical service", level: 1, values: []seedValue{
		{"checkup", "Checkup", 1, nil}, {"vaccination", "Vaccination", 2, nil}, {"surgery", "Surgery", 3, nil},
	}},
	{code: "foster_service", name: "Foster service", level: 1, values: []seedValue{
		{"day_care", "Day care", 1, nil}, {"boarding", "Boarding", 2, nil},
	}},
	{code: "beauty_service", name: "Beauty service", level: 1, values: []seedValue{
		{"bath", "Bath", 1, nil}, {"grooming", "Grooming", 2, nil},
	}},
	{code: "merchant_type", name: "Merchant type", level: 1, fixed: true, values: []seedValue{
		{"hospital", "Pet hospital", 1, nil}, {"house", "Pet house", 2, nil}, {"goods", "Pet goods", 3, nil},
	}},
}

// SeedCommonDictionaries loads the common pet dictionaries into the store.
func (s *Store) SeedCommonDictionaries(ctx context.Context) error {
	now := time.Now().UTC()
	repo := s.Dictionary()

	for _, d := range commonDictionaries {
		t := domain.DictType{
			DictCode:  d.code,
			DictName:  d.name,
			DictLevel: d.level,
			IsFixed:   d.fixed,
			Status:    domain.DictStatusEnabled,
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if d.parent != "" {
			parent := d.parent
			t.ParentCode = &parent
		}
		if err := repo.PutType(ctx, t); err != nil {
			return fmt.Errorf("seed type %s: %w", d.code, err)
		}

		for _, v := range d.values {
			_, err := repo.CreateValue(ctx, &domain.DictValue{
				DictCode:  d.code,
				ValueCode: v.code,
				ValueName: v.name,
				Order:     v.order,
				ExtraData: v.extra,
				Status:    domain.DictStatusEnabled,
				Version:   1,
				CreatedBy: "system",
				CreatedAt: now,
				UpdatedBy: "system",
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("seed value %s/%s: %w", d.code, v.code, err)
			}
		}
	}
	return nil
}
