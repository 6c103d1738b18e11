// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidListFormat = errors.New("Invalid response format from server")

// resourceManager carries the parts of Manager that only depend on the
// REST resource.
type resourceManager struct {
	resource    *apiclient.Resource
	typ         string
	displayName string
}

func (m *resourceManager) Type() string {
	return m.typ
}

func (m *resourceManager) DisplayName() string {
	return m.displayName
}

func (m *resourceManager) Update(ctx context.Context, name string, payload any) error {
	_, err := m.resource.Update(ctx, payload, name)
	return err
}

func (m *resourceManager) Delete(ctx context.Context, name string) error {
	_, err := m.resource.Delete(ctx, name)
	return err
}

// listNames fetches a collection that answers with a list of names.
func listNames(ctx context.Context, r *apiclient.Resource) ([]any, error) {
	body, err := r.ListRaw(ctx, nil)
	if err != nil {
		return nil, err
	}
	var names []any
	if err := json.Unmarshal(body, &names); err != nil || names == nil {
		logger.ConsoleLog.Errorf("expected array of names, got: %s", string(body))
		return nil, ErrInvalidListFormat
	}
	return names, nil
}

// fetchDetails resolves a name list into full documents with at most
// limit requests in flight. The order of names is kept; names that are
// not strings or whose detail cannot be fetched are skipped.
func fetchDetails[T any](ctx context.Context, r *apiclient.Resource, limit int, decode func([]byte) (*T, error)) ([]*T, error) {
	names, err := listNames(ctx, r)
	if err != nil {
		return nil, err
	}
	results := make([]*T, len(names))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, raw := range names {
		name, ok := raw.(string)
		if !ok {
			logger.ConsoleLog.Warnf("invalid name: %v", raw)
			continue
		}
		i := i
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			body, err := r.Get(gctx, name)
			if err != nil {
				logger.ConsoleLog.Warnf("failed to load details for %s: %v", name, err)
				return nil
			}
			doc, err := decode(body)
			if err != nil {
				logger.ConsoleLog.Warnf("failed to parse details for %s: %v", name, err)
				return nil
			}
			results[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	docs := make([]*T, 0, len(results))
	for _, doc := range results {
		if doc != nil {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func toAny[T any](docs []*T) []any {
	items := make([]any, len(docs))
	for i, doc := range docs {
		items[i] = doc
	}
	return items
}
