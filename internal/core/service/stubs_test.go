package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sylee999/minifeed/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubPostRepo struct {
	mu     sync.Mutex
	posts  map[string]*domain.Post
	byUser map[string][]domain.Post

	getAllErr    error
	getByIDErr   error
	getByUserErr map[string]error
	createErr    error
	deleteErr    error

	// updateErrs is consumed one entry per Update call; a nil entry or an
	// exhausted slice means success.
	updateErrs []error

	searchFn func(field, query string, page, limit int) ([]domain.Post, error)

	getByUserCalls int
	updateCalls    int
	searchCalls    int
	nextID         int
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{
		posts:        make(map[string]*domain.Post),
		byUser:       make(map[string][]domain.Post),
		getByUserErr: make(map[string]error),
	}
}

func (r *stubPostRepo) GetAll(_ context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getAllErr != nil {
		return nil, r.getAllErr
	}
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPostRepo) GetByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getByIDErr != nil {
		return nil, r.getByIDErr
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	clone.BookmarkedBy = append([]string(nil), p.BookmarkedBy...)
	return &clone, nil
}

func (r *stubPostRepo) GetByUser(_ context.Context, userID string) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByUserCalls++
	if err := r.getByUserErr[userID]; err != nil {
		return nil, err
	}
	return append([]domain.Post(nil), r.byUser[userID]...), nil
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *post
	clone.ID = "post_" + string(rune('0'+r.nextID))
	r.posts[clone.ID] = &clone
	stored := clone
	return &stored, nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if len(r.updateErrs) > 0 {
		err := r.updateErrs[0]
		r.updateErrs = r.updateErrs[1:]
		if err != nil {
			return err
		}
	}
	clone := *post
	clone.BookmarkedBy = append([]string(nil), post.BookmarkedBy...)
	r.posts[post.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) Search(_ context.Context, field, query string, page, limit int) ([]domain.Post, error) {
	r.mu.Lock()
	r.searchCalls++
	fn := r.searchFn
	r.mu.Unlock()
	if fn == nil {
		return []domain.Post{}, nil
	}
	return fn(field, query, page, limit)
}

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User

	getByIDErr map[string]error
	createErr  error
	updateErr  error
	deleteErr  error

	searchFn func(field, query string, page, limit int) ([]domain.User, error)

	getByIDCalls int
	updateCalls  int
	searchCalls  int
	nextID       int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:      make(map[string]*domain.User),
		getByIDErr: make(map[string]error),
	}
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getByIDCalls++
	if err := r.getByIDErr[id]; err != nil {
		return nil, err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	clone.Following = append([]string(nil), u.Following...)
	clone.BookmarkedPosts = append([]string(nil), u.BookmarkedPosts...)
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	clone := *user
	clone.ID = "user_" + string(rune('0'+r.nextID))
	r.users[clone.ID] = &clone
	stored := clone
	return &stored, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	clone := *user
	clone.Following = append([]string(nil), user.Following...)
	clone.BookmarkedPosts = append([]string(nil), user.BookmarkedPosts...)
	r.users[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Search(_ context.Context, field, query string, page, limit int) ([]domain.User, error) {
	r.mu.Lock()
	r.searchCalls++
	fn := r.searchFn
	r.mu.Unlock()
	if fn == nil {
		return []domain.User{}, nil
	}
	return fn(field, query, page, limit)
}
