// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package kvstore

import (
	"context"
	"fmt"
	"net/url"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultCollection holds one document per key
const DefaultCollection = "kv"

// Firestore keeps each key in its own document: {value, updated_at}.
type Firestore struct {
	client     *firestore.Client
	collection string
}

func NewFirestore(client *firestore.Client, collection string) *Firestore {
	if collection == "" {
		collection = DefaultCollection
	}
	return &Firestore{client: client, collection: collection}
}

// Document IDs may not contain '/', which the device prefix uses
func docID(key string) string {
	return url.PathEscape(key)
}

func (s *Firestore) Get(ctx context.Context, key string) (string, bool, error) {
	snap, err := s.client.Collection(s.collection).Doc(docID(key)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read document %q: %w", key, err)
	}

	value, ok := snap.Data()["value"].(string)
	if !ok {
		return "", false, nil
	}
	return value, true, nil
}

func (s *Firestore) Set(ctx context.Context, key, value string) error {
	_, err := s.client.Collection(s.collection).Doc(docID(key)).Set(ctx, map[string]interface{}{
		"value":      value,
		"updated_at": firestore.ServerTimestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to write document %q: %w", key, err)
	}
	return nil
}
