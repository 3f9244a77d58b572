package entities

import "time"

// KBDocument is a reference-library article (petrophysics method notes,
// field studies) used to ground the interpretation assistant.
type KBDocument struct {
	DocID     uint      `gorm:"primaryKey" json:"doc_id"`
	Title     string    `json:"title"`
	Tags      string    `json:"tags"`
	SourceURL string    `json:"source_url"`
	CreatedAt time.Time `json:"created_at"`
}

type KBChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	DocID     uint   `gorm:"index" json:"doc_id"`
	Ord       int    `json:"ord"`
	Text      string `json:"text"`
	Embedding []byte `json:"-"` // little-endian float32 vector, may be empty
}
