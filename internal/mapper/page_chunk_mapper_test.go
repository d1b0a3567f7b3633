package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"site-chatbot-be/internal/model"

	"gorm.io/datatypes"
)

func TestPageChunkMapperToEntity(t *testing.T) {
	m := NewPageChunkMapper()

	t.Run("should decode headings from JSON", func(t *testing.T) {
		mod := &model.PageChunk{
			Content:  "We offer consulting.",
			Path:     "/services",
			Headings: datatypes.JSON(`["Services","Consulting"]`),
		}

		e := m.ToEntity(mod)

		assert.Equal(t, []string{"Services", "Consulting"}, e.Headings)
	})

	t.Run("should degrade malformed headings to an empty list", func(t *testing.T) {
		mod := &model.PageChunk{
			Path:     "/services",
			Headings: datatypes.JSON(`{"not":"a list"`),
		}

		e := m.ToEntity(mod)

		assert.Empty(t, e.Headings)
	})

	t.Run("should leave headings empty when the column is empty", func(t *testing.T) {
		e := m.ToEntity(&model.PageChunk{Path: "/services"})

		assert.Empty(t, e.Headings)
	})

	t.Run("should map a zero updated_at to a nil pointer", func(t *testing.T) {
		e := m.ToEntity(&model.PageChunk{Path: "/services"})

		assert.Nil(t, e.UpdatedAt)
	})
}
