package store

import "github.com/debghosh/mysticresin/internal/models"

// BlogPosts returns a copy of the full blog collection, drafts included.
func (s *Store) BlogPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlogPost, len(s.blogPosts))
	copy(out, s.blogPosts)
	return out
}

// PublishedBlogPosts returns only the posts visible on the public blog.
func (s *Store) PublishedBlogPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlogPost, 0, len(s.blogPosts))
	for _, p := range s.blogPosts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out
}

// BlogPostByID returns the post with the given id, if present.
func (s *Store) BlogPostByID(id string) (models.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.blogPosts {
		if p.ID == id {
			return p, true
		}
	}
	return models.BlogPost{}, false
}

// AddBlogPost creates a post from a draft with a fresh id, prepends it and
// persists.
func (s *Store) AddBlogPost(draft models.BlogPostDraft) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.BlogPost{
		ID:        s.genID("blog"),
		Title:     draft.Title,
		Date:      draft.Date,
		Excerpt:   draft.Excerpt,
		Content:   draft.Content,
		Image:     draft.Image,
		Author:    draft.Author,
		Tags:      draft.Tags,
		Published: draft.Published,
	}

	s.blogPosts = append([]models.BlogPost{post}, s.blogPosts...)
	if err := s.persist(keyBlogPosts, s.blogPosts); err != nil {
		return post, err
	}
	return post, nil
}

// UpdateBlogPost replaces the whole record matching updated.ID. An unknown
// id is a silent no-op.
func (s *Store) UpdateBlogPost(updated models.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.blogPosts {
		if p.ID == updated.ID {
			s.blogPosts[i] = updated
			return s.persist(keyBlogPosts, s.blogPosts)
		}
	}
	return nil
}

// DeleteBlogPost removes the post with the given id, reporting whether it
// existed.
func (s *Store) DeleteBlogPost(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.blogPosts {
		if p.ID == id {
			s.blogPosts = append(s.blogPosts[:i], s.blogPosts[i+1:]...)
			if err := s.persist(keyBlogPosts, s.blogPosts); err != nil {
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}
