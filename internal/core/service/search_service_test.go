package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sylee999/minifeed/internal/core/domain"
)

func TestSearchServicePostsMergesAndDeduplicates(t *testing.T) {
	posts := newStubPostRepo()
	posts.searchFn = func(field, query string, page, limit int) ([]domain.Post, error) {
		switch field {
		case "title":
			return []domain.Post{{ID: "p1", Title: "go tips"}, {ID: "p2", Title: "more go"}}, nil
		case "content":
			return []domain.Post{{ID: "p2", Title: "more go"}, {ID: "p3", Title: "unrelated"}}, nil
		default:
			return nil, errors.New("unexpected field " + field)
		}
	}

	svc := NewSearchService(posts, newStubUserRepo(), discardLogger)
	got, err := svc.SearchPosts(context.Background(), "go", 1, 20)
	if err != nil {
		t.Fatalf("SearchPosts() error = %v", err)
	}

	want := []string{"p1", "p2", "p3"}
	if !equalIDs(postIDs(got), want) {
		t.Errorf("SearchPosts() = %v, want %v (title matches first, p2 once)", postIDs(got), want)
	}
	if posts.searchCalls != 2 {
		t.Errorf("Search called %d times, want 2 (title and content)", posts.searchCalls)
	}
}

func TestSearchServiceBlankQueryShortCircuits(t *testing.T) {
	for _, query := range []string{"", "   ", "\t\n"} {
		posts := newStubPostRepo()
		users := newStubUserRepo()
		svc := NewSearchService(posts, users, discardLogger)

		gotPosts, err := svc.SearchPosts(context.Background(), query, 1, 20)
		if err != nil {
			t.Fatalf("SearchPosts(%q) error = %v", query, err)
		}
		if gotPosts == nil || len(gotPosts) != 0 {
			t.Errorf("SearchPosts(%q) = %v, want empty non-nil slice", query, gotPosts)
		}

		gotUsers, err := svc.SearchUsers(context.Background(), query, 1, 20)
		if err != nil {
			t.Fatalf("SearchUsers(%q) error = %v", query, err)
		}
		if gotUsers == nil || len(gotUsers) != 0 {
			t.Errorf("SearchUsers(%q) = %v, want empty non-nil slice", query, gotUsers)
		}

		if posts.searchCalls != 0 || users.searchCalls != 0 {
			t.Errorf("blank query %q reached the store (%d post calls, %d user calls)", query, posts.searchCalls, users.searchCalls)
		}
	}
}

func TestSearchServicePostsFailsWhenEitherQueryFails(t *testing.T) {
	posts := newStubPostRepo()
	posts.searchFn = func(field, query string, page, limit int) ([]domain.Post, error) {
		if field == "content" {
			return nil, domain.NewAPIError("store request failed", 500, "/posts?content=go")
		}
		return []domain.Post{{ID: "p1"}}, nil
	}

	svc := NewSearchService(posts, newStubUserRepo(), discardLogger)
	_, err := svc.SearchPosts(context.Background(), "go", 1, 20)
	if err == nil {
		t.Fatal("SearchPosts() returned nil error when one field query failed")
	}
	if !strings.HasPrefix(err.Error(), "failed to search posts: ") {
		t.Errorf("SearchPosts() error = %q, want the search-posts label", err)
	}
	if !domain.IsKind(err, domain.KindAPI) {
		t.Errorf("SearchPosts() error does not wrap the store error: %v", err)
	}
}

func TestSearchServiceUsersMergesAndDeduplicates(t *testing.T) {
	users := newStubUserRepo()
	users.searchFn = func(field, query string, page, limit int) ([]domain.User, error) {
		switch field {
		case "name":
			return []domain.User{{ID: "u1", Name: "Gopher"}}, nil
		case "bio":
			return []domain.User{{ID: "u1", Name: "Gopher"}, {ID: "u2", Name: "Rob"}}, nil
		default:
			return nil, errors.New("unexpected field " + field)
		}
	}

	svc := NewSearchService(newStubPostRepo(), users, discardLogger)
	got, err := svc.SearchUsers(context.Background(), "gopher", 1, 20)
	if err != nil {
		t.Fatalf("SearchUsers() error = %v", err)
	}

	if len(got) != 2 || got[0].ID != "u1" || got[1].ID != "u2" {
		t.Errorf("SearchUsers() = %v, want [u1 u2]", got)
	}
	if users.searchCalls != 2 {
		t.Errorf("Search called %d times, want 2 (name and bio)", users.searchCalls)
	}
}

func TestSearchServiceUsersFailsWhenEitherQueryFails(t *testing.T) {
	users := newStubUserRepo()
	users.searchFn = func(field, query string, page, limit int) ([]domain.User, error) {
		if field == "bio" {
			return nil, errors.New("store down")
		}
		return []domain.User{}, nil
	}

	svc := NewSearchService(newStubPostRepo(), users, discardLogger)
	_, err := svc.SearchUsers(context.Background(), "gopher", 1, 20)
	if err == nil {
		t.Fatal("SearchUsers() returned nil error when one field query failed")
	}
	if !strings.HasPrefix(err.Error(), "failed to search users: ") {
		t.Errorf("SearchUsers() error = %q, want the search-users label", err)
	}
}
