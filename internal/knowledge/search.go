package knowledge

import (
	"context"
	"fmt"
	"sort"
	"strings"

	chromem "github.com/philippgille/chromem-go"

	"github.com/neuroscanhq/neuroscan/internal/embeddings"
)

const collectionName = "knowledge"

// Hit is one semantic search result over the knowledge base.
type Hit struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"` // "entry" or "faq"
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Similarity float32 `json:"similarity"`
}

// Index is an in-memory semantic index over the knowledge entries and FAQs.
type Index struct {
	collection *chromem.Collection
}

// NewIndex embeds the static knowledge base into a chromem collection.
// Building the index makes one embedding call per document.
func NewIndex(ctx context.Context, embedder embeddings.Embedder) (*Index, error) {
	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(collectionName, nil, embeddings.ToChromemFunc(embedder))
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}

	var docs []chromem.Document

	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		e := entries[key]
		content := e.Description
		if len(e.Symptoms) > 0 {
			content += "\nSymptoms: " + strings.Join(e.Symptoms, "; ")
		}
		if len(e.TreatmentOptions) > 0 {
			content += "\nTreatment: " + strings.Join(e.TreatmentOptions, "; ")
		}
		docs = append(docs, chromem.Document{
			ID:       "entry:" + key,
			Content:  content,
			Metadata: map[string]string{"kind": "entry", "title": e.Name},
		})
	}

	for i, faq := range faqs {
		docs = append(docs, chromem.Document{
			ID:       fmt.Sprintf("faq:%d", i),
			Content:  faq.Question + "\n" + faq.Answer,
			Metadata: map[string]string{"kind": "faq", "title": faq.Question},
		})
	}

	if err := col.AddDocuments(ctx, docs, 2); err != nil {
		return nil, fmt.Errorf("indexing knowledge base: %w", err)
	}

	return &Index{collection: col}, nil
}

// Search returns the closest knowledge documents for a free-form query.
func (ix *Index) Search(ctx context.Context, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		limit = 5
	}
	if count := ix.collection.Count(); limit > count {
		limit = count
	}
	if limit == 0 {
		return nil, nil
	}

	results, err := ix.collection.Query(ctx, query, limit, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("knowledge query: %w", err)
	}

	hits := make([]Hit, len(results))
	for i, r := range results {
		hits[i] = Hit{
			ID:         r.ID,
			Kind:       r.Metadata["kind"],
			Title:      r.Metadata["title"],
			Content:    r.Content,
			Similarity: r.Similarity,
		}
	}
	return hits, nil
}
