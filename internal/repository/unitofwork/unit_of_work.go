package unitofwork

import (
	"context"

	"site-chatbot-be/internal/repository/contract"
)

// RepositoryFactory hands out a fresh UnitOfWork per request so handlers
// never share transactional state.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CacheRepository() contract.CacheRepository
	PageChunkRepository() contract.PageChunkRepository
	ChatLogRepository() contract.ChatLogRepository
	LeadRepository() contract.LeadRepository
}
