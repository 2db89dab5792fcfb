// Package backup implements the export/import snapshot format used for
// manual backup and restore of the whole site.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/debghosh/mysticresin/internal/models"
	"github.com/debghosh/mysticresin/internal/store"
)

// FormatVersion tags every export document.
const FormatVersion = "1.0"

// Document is the snapshot format. On import, any subset of the three
// collection keys is accepted; whichever are present replace the matching
// collection wholesale, absent keys leave theirs untouched.
type Document struct {
	Config     *models.SiteConfig `json:"config,omitempty"`
	Products   *[]models.Product  `json:"products,omitempty"`
	BlogPosts  *[]models.BlogPost `json:"blogPosts,omitempty"`
	ExportDate string             `json:"exportDate,omitempty"`
	Version    string             `json:"version,omitempty"`
}

// documentSchema rejects documents whose top-level shape cannot possibly be
// an export snapshot, before anything is applied. Record fields stay
// loosely validated on purpose; old exports carry legacy fields.
const documentSchema = `{
	"type": "object",
	"properties": {
		"config":    {"type": "object"},
		"products":  {"type": "array", "items": {"type": "object"}},
		"blogPosts": {"type": "array", "items": {"type": "object"}}
	}
}`

type Service struct {
	store  *store.Store
	schema *jsonschema.Schema

	now func() time.Time
}

func NewService(st *store.Store) *Service {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	const schemaURL = "https://mysticresin.local/backup.schema.json"
	if err := c.AddResource(schemaURL, strings.NewReader(documentSchema)); err != nil {
		panic(fmt.Sprintf("backup schema load failed: %v", err))
	}
	return &Service{
		store:  st,
		schema: c.MustCompile(schemaURL),
		now:    time.Now,
	}
}

// Export produces the downloadable snapshot: current config, full product
// and blog collections, an export timestamp and the format version.
func (s *Service) Export() ([]byte, error) {
	config, products, blogPosts := s.store.Snapshot()
	doc := Document{
		Config:     &config,
		Products:   &products,
		BlogPosts:  &blogPosts,
		ExportDate: s.now().UTC().Format(time.RFC3339),
		Version:    FormatVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// Import parses and validates a snapshot, then replaces whichever
// collections it carries. Failure is atomic: nothing is mutated unless the
// whole document parses and passes the shape check. Unknown keys are
// ignored.
func (s *Service) Import(data []byte) error {
	var shape any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&shape); err != nil {
		return fmt.Errorf("parse import document: %w", err)
	}
	if err := s.schema.Validate(shape); err != nil {
		return fmt.Errorf("invalid import document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode import document: %w", err)
	}

	var prods []models.Product
	if doc.Products != nil {
		prods = *doc.Products
		if prods == nil {
			prods = []models.Product{}
		}
	}
	var posts []models.BlogPost
	if doc.BlogPosts != nil {
		posts = *doc.BlogPosts
		if posts == nil {
			posts = []models.BlogPost{}
		}
	}

	return s.store.Replace(doc.Config, prods, posts)
}
