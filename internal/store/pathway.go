package store

import (
	"context"
	"fmt"

	"github.com/Surfer12/microarch-lab-conversions/ent"
	"github.com/Surfer12/microarch-lab-conversions/ent/pathway"
)

// pathwayRepo implements PathwayRepo using the ent client.
type pathwayRepo struct {
	client *ent.Client
}

func (r *pathwayRepo) Create(ctx context.Context, name, description, level string) (*PathwayRecord, error) {
	p, err := r.client.Pathway.Create().
		SetName(name).
		SetDescription(description).
		SetLevel(level).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrPathwayExists
		}
		return nil, fmt.Errorf("create pathway: %w", err)
	}
	return entPathwayToRecord(p), nil
}

func (r *pathwayRepo) List(ctx context.Context) ([]*PathwayRecord, error) {
	rows, err := r.client.Pathway.Query().
		Order(ent.Asc(pathway.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pathways: %w", err)
	}
	records := make([]*PathwayRecord, 0, len(rows))
	for _, p := range rows {
		records = append(records, entPathwayToRecord(p))
	}
	return records, nil
}

func (r *pathwayRepo) Get(ctx context.Context, name string) (*PathwayRecord, error) {
	p, err := r.client.Pathway.Query().
		Where(pathway.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrPathwayNotFound
		}
		return nil, fmt.Errorf("get pathway: %w", err)
	}
	return entPathwayToRecord(p), nil
}

func (r *pathwayRepo) Edit(ctx context.Context, name string, update PathwayUpdate) (*PathwayRecord, error) {
	p, err := r.client.Pathway.Query().
		Where(pathway.NameEQ(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrPathwayNotFound
		}
		return nil, fmt.Errorf("get pathway for edit: %w", err)
	}

	builder := p.Update()
	if update.Description != nil {
		builder = builder.SetDescription(*update.Description)
	}
	if update.Level != nil {
		builder = builder.SetLevel(*update.Level)
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("edit pathway: %w", err)
	}
	return entPathwayToRecord(updated), nil
}

func (r *pathwayRepo) Delete(ctx context.Context, name string) error {
	n, err := r.client.Pathway.Delete().
		Where(pathway.NameEQ(name)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete pathway: %w", err)
	}
	if n == 0 {
		return ErrPathwayNotFound
	}
	return nil
}

func entPathwayToRecord(p *ent.Pathway) *PathwayRecord {
	return &PathwayRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Level:       p.Level,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
