package service

import "petrolog/entities"

// KBService maintains the reference library: method notes, field
// studies and cutoff tables that ground the LLM interpretation.
type KBService interface {
	Ingest(title, tags, text, sourceURL string) (*entities.KBDocument, int, error)
	Search(query string, k int) ([]entities.KBChunk, error)
	Docs() ([]entities.KBDocument, error)
	DocsMeta(ids []uint) (map[uint]entities.KBDocument, error)
}
