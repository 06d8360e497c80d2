package links

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goshortlink/cache/cacher"
	"goshortlink/cache/inmemory"
	"goshortlink/models"
	"goshortlink/repository"
)

// fakeRepo is an in-memory Repository that enforces short-code uniqueness
// under a mutex, like the real store's unique constraint.
type fakeRepo struct {
	repository.UnimplementedRepository
	mu     sync.Mutex
	byCode map[string]*models.Link
	clicks []models.Click

	findByCodeCalls int
	deactivateErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byCode: make(map[string]*models.Link)}
}

func (f *fakeRepo) FindByCode(ctx context.Context, code string) (*models.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findByCodeCalls++
	link, ok := f.byCode[code]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	cp := *link
	return &cp, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, link := range f.byCode {
		if link.ID == id {
			cp := *link
			return &cp, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (f *fakeRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Link, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var owned []models.Link
	for _, link := range f.byCode {
		if link.OwnerID != nil && *link.OwnerID == ownerID {
			cp := *link
			for _, click := range f.clicks {
				if click.LinkID == link.ID {
					cp.Clicks = append(cp.Clicks, click)
				}
			}
			owned = append(owned, cp)
		}
	}
	return owned, nil
}

func (f *fakeRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.byCode[code]
	return ok, nil
}

func (f *fakeRepo) Insert(ctx context.Context, link *models.Link) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byCode[link.ShortCode]; ok {
		return repository.ErrDuplicateCode
	}
	cp := *link
	f.byCode[link.ShortCode] = &cp
	return nil
}

func (f *fakeRepo) InsertClick(ctx context.Context, click *models.Click) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clicks = append(f.clicks, *click)
	return nil
}

func (f *fakeRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deactivateErr != nil {
		return f.deactivateErr
	}
	for _, link := range f.byCode {
		if link.ID == id {
			link.Active = false
			return nil
		}
	}
	return repository.ErrRecordNotFound
}

func (f *fakeRepo) clickCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clicks)
}

func (f *fakeRepo) findCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findByCodeCalls
}

func (f *fakeRepo) remove(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byCode, code)
}

func (f *fakeRepo) seed(code, originalURL string, ownerID *uuid.UUID, active bool, expiresAt *time.Time) *models.Link {
	link := &models.Link{
		ID:          uuid.New(),
		OriginalURL: originalURL,
		ShortCode:   code,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
		ExpiresAt:   expiresAt,
		Active:      active,
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byCode[code] = link
	return link
}

func newTestService(db repository.Repository) (*Service, cacher.Engine) {
	engine := inmemory.New(time.Hour, time.Hour)
	return New(db, engine, zap.NewNop()), engine
}
