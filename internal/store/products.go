package store

import "github.com/debghosh/mysticresin/internal/models"

// Products returns a copy of the product collection, newest first.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductByID returns the product with the given id, if present.
func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// AddProduct creates a product from a draft: it assigns a fresh id, stamps
// both timestamps with the same instant, prepends the product so the
// collection stays newest-first, and persists.
func (s *Store) AddProduct(draft models.ProductDraft) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.timestamp()
	product := models.Product{
		ID:               s.genID("prod"),
		Title:            draft.Title,
		ShortDescription: draft.ShortDescription,
		LongDescription:  draft.LongDescription,
		Price:            draft.Price,
		Category:         draft.Category,
		Images:           draft.Images,
		MainImage:        draft.MainImage,
		IsFeatured:       draft.IsFeatured,
		IsNew:            draft.IsNew,
		IsBestSeller:     draft.IsBestSeller,
		Dimensions:       draft.Dimensions,
		Materials:        draft.Materials,
		CareInstructions: draft.CareInstructions,
		Weight:           draft.Weight,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}

	s.products = append([]models.Product{product}, s.products...)
	if err := s.persist(keyProducts, s.products); err != nil {
		return product, err
	}
	return product, nil
}

// UpdateProduct replaces the record matching updated.ID and refreshes its
// UpdatedAt stamp. An unknown id is a silent no-op.
func (s *Store) UpdateProduct(updated models.Product) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == updated.ID {
			updated.UpdatedAt = s.timestamp()
			s.products[i] = updated
			if err := s.persist(keyProducts, s.products); err != nil {
				return updated, err
			}
			return updated, nil
		}
	}
	return updated, nil
}

// DeleteProduct removes the product with the given id, reporting whether it
// existed. Deleting an unknown id is a no-op. Confirmation is the caller's
// responsibility; once called, the removal is irreversible.
func (s *Store) DeleteProduct(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			if err := s.persist(keyProducts, s.products); err != nil {
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}
