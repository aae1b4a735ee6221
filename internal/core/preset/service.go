// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package preset

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gamelens/gamelens/internal/core/filter"
	"github.com/gamelens/gamelens/internal/platform/apperr"
	"github.com/gamelens/gamelens/internal/platform/constants"
	"github.com/gamelens/gamelens/internal/platform/validate"
	"github.com/gamelens/gamelens/pkg/uuidv7"
)

// Service owns the preset catalogue: builtins plus the persisted user
// collection.
type Service struct {
	repo    Repository
	baseURL string
	logger  *slog.Logger

	now func() time.Time
}

// NewService constructs the preset service. baseURL is the front-end URL
// shareable links point at.
func NewService(repo Repository, baseURL string, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		now:     time.Now,
	}
}

// List returns builtins first, then user presets in creation order.
func (service *Service) List(context context.Context) ([]*Preset, error) {
	user, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return append(Builtins(), user...), nil
}

// Get returns one preset, builtin or user, by id.
func (service *Service) Get(context context.Context, id string) (*Preset, error) {
	all, err := service.List(context)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Preset")
}

// Save validates and persists a new user preset.
func (service *Service) Save(context context.Context, draft Draft) (*Preset, error) {
	draft = draft.normalized()

	if err := service.validateDraft(draft); err != nil {
		return nil, err
	}
	if err := service.checkNameFree(context, draft.Name, ""); err != nil {
		return nil, err
	}

	user, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	if len(user) >= MaxUserPresets {
		return nil, apperr.Unprocessable(fmt.Sprintf("Preset limit of %d reached", MaxUserPresets))
	}

	now := service.now()
	preset := &Preset{
		ID:          uuidv7.New(),
		Name:        draft.Name,
		Description: draft.Description,
		Category:    draft.Category,
		Tags:        draft.Tags,
		Filters:     draft.Filters,
		IsUser:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := service.repo.Put(context, preset); err != nil {
		return nil, err
	}

	service.logger.Info("preset saved", slog.String("id", preset.ID), slog.String("name", preset.Name))
	return preset, nil
}

// Update replaces a user preset's content. Builtins cannot be updated.
func (service *Service) Update(context context.Context, id string, draft Draft) (*Preset, error) {
	if isBuiltinID(id) {
		return nil, apperr.Forbidden("Built-in presets cannot be modified")
	}

	draft = draft.normalized()

	if err := service.validateDraft(draft); err != nil {
		return nil, err
	}
	if err := service.checkNameFree(context, draft.Name, id); err != nil {
		return nil, err
	}

	existing, err := service.findUser(context, id)
	if err != nil {
		return nil, err
	}

	existing.Name = draft.Name
	existing.Description = draft.Description
	existing.Category = draft.Category
	existing.Tags = draft.Tags
	existing.Filters = draft.Filters
	existing.UpdatedAt = service.now()

	if err := service.repo.Put(context, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a user preset, reporting whether it existed. Deleting a
// builtin is forbidden rather than silently absent.
func (service *Service) Delete(context context.Context, id string) (bool, error) {
	if isBuiltinID(id) {
		return false, apperr.Forbidden("Built-in presets cannot be deleted")
	}
	return service.repo.Delete(context, id)
}

// FindMatching returns the preset whose filters equal the given state, or
// nil when no preset matches. Builtins win over user presets on the
// (unlikely) duplicate definition.
func (service *Service) FindMatching(context context.Context, filters filter.Config) (*Preset, error) {
	all, err := service.List(context)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if filter.Equal(p.Filters, filters) {
			return p, nil
		}
	}
	return nil, nil
}

// Export renders user presets in the portable versioned form. A non-empty
// ids list restricts the export to those presets; otherwise the whole
// collection is exported. Builtins are never exported; they travel with the
// app itself.
func (service *Service) Export(context context.Context, ids []string) (*ExportDocument, error) {
	user, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	selected := map[string]bool{}
	for _, id := range ids {
		selected[id] = true
	}

	doc := &ExportDocument{
		Version:    constants.PresetExportVersion,
		ExportedAt: service.now(),
		Presets:    make([]ExportedPreset, 0, len(user)),
	}
	for _, p := range user {
		if len(selected) > 0 && !selected[p.ID] {
			continue
		}
		doc.Presets = append(doc.Presets, ExportedPreset{
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Tags:        p.Tags,
			Filters:     p.Filters,
		})
	}
	return doc, nil
}

// Import saves every valid entry of an export document and reports the rest
// as skipped with reasons. One bad entry never fails the batch. With
// overwrite set, an entry whose name collides with an existing user preset
// replaces it in place instead of being skipped; builtin name collisions
// are always skipped.
func (service *Service) Import(context context.Context, doc ExportDocument, overwrite bool) (*ImportResult, error) {
	if doc.Version > constants.PresetExportVersion {
		return nil, apperr.Unprocessable(fmt.Sprintf(
			"Export version %d is newer than supported version %d", doc.Version, constants.PresetExportVersion))
	}
	if len(doc.Presets) == 0 {
		return nil, apperr.ValidationError("Export document contains no presets")
	}

	result := &ImportResult{}
	for _, entry := range doc.Presets {
		name := strings.TrimSpace(entry.Name)

		overwritten, err := service.importOne(context, name, entry, overwrite)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedPreset{Name: name, Reason: err.Error()})
			continue
		}
		if overwritten {
			result.Overwritten++
		} else {
			result.Imported++
		}
	}

	service.logger.Info("presets imported",
		slog.Int("imported", result.Imported),
		slog.Int("overwritten", result.Overwritten),
		slog.Int("skipped", len(result.Skipped)))
	return result, nil
}

// ShareURL renders the canonical shareable link for a filter state.
func (service *Service) ShareURL(filters filter.Config) string {
	return filter.ShareURL(filters, service.baseURL)
}

// importOne persists a single import entry, reporting whether it replaced
// an existing user preset.
func (service *Service) importOne(context context.Context, name string, entry ExportedPreset, overwrite bool) (bool, error) {
	draft := Draft{
		Name:        name,
		Description: entry.Description,
		Category:    entry.Category,
		Tags:        entry.Tags,
		Filters:     entry.Filters,
	}

	if overwrite {
		existing, err := service.findUserByName(context, name)
		if err != nil {
			return false, err
		}
		if existing != nil {
			_, err := service.Update(context, existing.ID, draft)
			return true, err
		}
	}

	_, err := service.Save(context, draft)
	return false, err
}

// normalized trims the text fields and drops blank tags.
func (draft Draft) normalized() Draft {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Description = strings.TrimSpace(draft.Description)
	draft.Category = strings.TrimSpace(draft.Category)

	var tags []string
	for _, tag := range draft.Tags {
		if clean := strings.TrimSpace(tag); clean != "" {
			tags = append(tags, clean)
		}
	}
	draft.Tags = tags
	return draft
}

func (service *Service) validateDraft(draft Draft) error {
	v := &validate.Validator{}
	v.Required("name", draft.Name).
		MaxLen("name", draft.Name, NameMaxLen).
		MaxLen("description", draft.Description, DescriptionMaxLen).
		MaxLen("category", draft.Category, CategoryMaxLen)
	if err := v.Err(); err != nil {
		return err
	}
	return draft.Filters.Validate()
}

// checkNameFree rejects names already taken by a builtin or another user
// preset. excludeID skips the preset being updated.
func (service *Service) checkNameFree(context context.Context, name, excludeID string) error {
	all, err := service.List(context)
	if err != nil {
		return err
	}
	for _, p := range all {
		if p.ID != excludeID && strings.EqualFold(p.Name, name) {
			return apperr.Conflict(fmt.Sprintf("A preset named %q already exists", p.Name))
		}
	}
	return nil
}

// findUserByName returns the user preset with the given name, matched case
// insensitively, or nil when none exists.
func (service *Service) findUserByName(context context.Context, name string) (*Preset, error) {
	user, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	for _, p := range user {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (service *Service) findUser(context context.Context, id string) (*Preset, error) {
	user, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	for _, p := range user {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Preset")
}

func isBuiltinID(id string) bool {
	return strings.HasPrefix(id, "builtin-")
}
