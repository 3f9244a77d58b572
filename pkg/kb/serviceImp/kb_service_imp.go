package serviceImp

import (
	"math"
	"sort"
	"strings"

	"petrolog/entities"
	"petrolog/pkg/kb/embedder"
	"petrolog/pkg/kb/repository"
)

const chunkRunes = 1000

type Svc struct {
	r   repository.KBRepository
	emb *embedder.Client
}

// New accepts a nil embedder; search then degrades to keyword scoring.
func New(r repository.KBRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

// chunkText splits on paragraph-ish boundaries once a chunk has grown
// past maxRunes. Reference notes keep formulas and their surrounding
// prose in the same chunk this way.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = chunkRunes
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			if p := strings.TrimSpace(cur.String()); p != "" {
				parts = append(parts, p)
			}
			cur.Reset()
			count = 0
		}
	}
	if p := strings.TrimSpace(cur.String()); p != "" {
		parts = append(parts, p)
	}
	return parts
}

func (s *Svc) Ingest(title, tags, text, sourceURL string) (*entities.KBDocument, int, error) {
	d := &entities.KBDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, chunkRunes)
	if len(chs) == 0 {
		return d, 0, nil
	}

	var vecs [][]float32
	if s.emb != nil {
		// embedding failure is not fatal: chunks stay searchable by keyword
		if v, err := s.emb.Embed(chs); err == nil {
			vecs = v
		}
	}

	rows := make([]entities.KBChunk, len(chs))
	for i := range chs {
		var blob []byte
		if vecs != nil && i < len(vecs) {
			blob = embedder.FloatsToBytes(vecs[i])
		}
		rows[i] = entities.KBChunk{DocID: d.DocID, Ord: i, Text: chs[i], Embedding: blob}
	}
	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func (s *Svc) Search(query string, k int) ([]entities.KBChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		if v, err := s.emb.Embed([]string{q}); err == nil && len(v) == 1 {
			qvec = v[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.KBChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))
	if len(qvec) > 0 {
		for _, ch := range chunks {
			sc := cosine(qvec, embedder.BytesToFloats(ch.Embedding))
			if sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	} else {
		terms := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			if sc := termHits(strings.ToLower(ch.Text), terms); sc > 0 {
				list = append(list, scored{ch, sc})
			}
		}
	}
	if len(list) == 0 {
		return nil, nil
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.KBChunk, k)
	for i := 0; i < k; i++ {
		out[i] = list[i].ch
	}
	return out, nil
}

func (s *Svc) Docs() ([]entities.KBDocument, error) { return s.r.ListDocs() }

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.KBDocument, error) {
	return s.r.DocsByIDs(ids)
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		na += x * x
		nb += y * y
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// termHits counts how many query terms appear in the chunk. Coarse,
// but it ranks "archie saturation" notes above generic ones without
// an embeddings endpoint.
func termHits(text string, terms []string) float64 {
	n := 0.0
	for _, t := range terms {
		if strings.Contains(text, t) {
			n++
		}
	}
	return n
}
