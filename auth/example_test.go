package auth_test

import (
	"context"
	"fmt"

	"github.com/henrystivens/go-kumbia-auth/auth"
	"github.com/henrystivens/go-kumbia-auth/auth/inmemory"
	"github.com/henrystivens/go-kumbia-auth/hashing"
)

func Example() {
	// Hash the credential at registration time.
	hash, err := auth.CreateHash("secret123")
	if err != nil {
		panic(err)
	}

	lookup := inmemory.NewLookup()
	lookup.Register("users", "find_by_username",
		func(_ context.Context, username string) (auth.Record, error) {
			if username != "alice" {
				return nil, nil
			}
			return inmemory.Record{"id": 7, "password": hash}, nil
		})

	hasher, err := hashing.NewDefaultManager()
	if err != nil {
		panic(err)
	}
	store := inmemory.NewSessionStore()
	a := auth.NewModelAuthenticator(lookup, hasher, store, auth.DefaultConfig())

	req := auth.RequestInfo{
		Referer: "https://example.com/login",
		Host:    "example.com",
	}
	ok := a.Authenticate(context.Background(), req, "alice", "secret123")
	id, _ := store.Get("default", "id")

	fmt.Println(ok)
	fmt.Println(id)
	// Output:
	// true
	// 7
}
