package mapper

import (
	"encoding/json"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/model"

	"gorm.io/datatypes"
)

type PageChunkMapper struct{}

func NewPageChunkMapper() *PageChunkMapper {
	return &PageChunkMapper{}
}

func (m *PageChunkMapper) ToEntity(mod *model.PageChunk) *entity.PageChunk {
	// Headings are stored as a JSON array; a malformed value degrades to an
	// empty list rather than failing the read.
	var headings []string
	if len(mod.Headings) > 0 {
		if err := json.Unmarshal(mod.Headings, &headings); err != nil {
			headings = nil
		}
	}

	e := &entity.PageChunk{
		Id:           mod.Id,
		Content:      mod.Content,
		Path:         mod.Path,
		CanonicalURL: mod.CanonicalURL,
		Title:        mod.Title,
		Headings:     headings,
		ChunkIndex:   mod.ChunkIndex,
		CreatedAt:    mod.CreatedAt,
	}
	if !mod.UpdatedAt.IsZero() {
		updatedAt := mod.UpdatedAt
		e.UpdatedAt = &updatedAt
	}
	return e
}

func (m *PageChunkMapper) ToModel(e *entity.PageChunk) *model.PageChunk {
	headings, err := json.Marshal(e.Headings)
	if err != nil {
		headings = []byte("[]")
	}

	mod := &model.PageChunk{
		Id:           e.Id,
		Content:      e.Content,
		Path:         e.Path,
		CanonicalURL: e.CanonicalURL,
		Title:        e.Title,
		Headings:     datatypes.JSON(headings),
		ChunkIndex:   e.ChunkIndex,
		CreatedAt:    e.CreatedAt,
	}
	if e.UpdatedAt != nil {
		mod.UpdatedAt = *e.UpdatedAt
	}
	return mod
}
