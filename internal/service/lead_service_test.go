package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"site-chatbot-be/internal/dto"
	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/internal/repository/memory"
	"site-chatbot-be/pkg/store"
)

type leadFixture struct {
	leads    *fakeLeadRepo
	sessions *memory.SessionRepository
	service  ILeadService
}

func newLeadFixture() *leadFixture {
	leads := newFakeLeadRepo()
	sessions := memory.NewSessionRepository()
	return &leadFixture{
		leads:    leads,
		sessions: sessions,
		service: NewLeadService(
			&fakeUowFactory{uow: &fakeUnitOfWork{leads: leads}},
			sessions, logger.NewNopLogger()),
	}
}

func validLeadRequest() *dto.SaveLeadRequest {
	return &dto.SaveLeadRequest{
		UserId:       "visitor-1",
		Name:         "Asha Patil",
		Email:        "asha@example.com",
		Phone:        "+91 98765 43210",
		Organization: "Acme Manufacturing",
	}
}

func TestSaveLead(t *testing.T) {
	ctx := context.Background()

	t.Run("should persist the lead with the session score", func(t *testing.T) {
		f := newLeadFixture()
		f.sessions.Save(&store.Session{ID: "visitor-1", ConversionScore: 4})

		res, err := f.service.SaveLead(ctx, validLeadRequest())

		assert.NoError(t, err)
		assert.Equal(t, 4, res.ConversionScore)

		saved := f.leads.leads["visitor-1"]
		assert.NotNil(t, saved)
		assert.Equal(t, "Asha Patil", saved.Name)
		assert.Equal(t, "+91 98765 43210", saved.Phone)
		assert.Equal(t, 4, saved.ConversionScore)
	})

	t.Run("should mark the session so the widget stops prompting", func(t *testing.T) {
		f := newLeadFixture()
		f.sessions.Save(&store.Session{ID: "visitor-1", ConversionScore: 5})

		_, err := f.service.SaveLead(ctx, validLeadRequest())

		assert.NoError(t, err)
		session, _ := f.sessions.Get("visitor-1")
		assert.True(t, session.LeadSaved)
	})

	t.Run("should fall back to the initial score without a session", func(t *testing.T) {
		f := newLeadFixture()

		res, err := f.service.SaveLead(ctx, validLeadRequest())

		assert.NoError(t, err)
		assert.Equal(t, store.InitialConversionScore, res.ConversionScore)
	})

	t.Run("should reject a malformed phone number", func(t *testing.T) {
		f := newLeadFixture()

		testCases := []string{"abc", "12345", "++9198765", "98765@43210"}
		for _, phone := range testCases {
			req := validLeadRequest()
			req.Phone = phone

			_, err := f.service.SaveLead(ctx, req)

			assert.Error(t, err, "phone %q must be rejected", phone)
		}
		assert.Empty(t, f.leads.leads)
	})

	t.Run("should overwrite an existing lead for the same visitor", func(t *testing.T) {
		f := newLeadFixture()

		_, err := f.service.SaveLead(ctx, validLeadRequest())
		assert.NoError(t, err)

		updated := validLeadRequest()
		updated.Email = "asha.patil@acme.example"
		_, err = f.service.SaveLead(ctx, updated)
		assert.NoError(t, err)

		assert.Len(t, f.leads.leads, 1)
		assert.Equal(t, "asha.patil@acme.example", f.leads.leads["visitor-1"].Email)
	})

	t.Run("should propagate a storage failure", func(t *testing.T) {
		f := newLeadFixture()
		f.leads.fail = true

		_, err := f.service.SaveLead(ctx, validLeadRequest())

		assert.Error(t, err)
	})
}
