package dashboard

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var defaultDataset []byte

// Service serves the static dashboard dataset.
type Service struct {
	overview Overview
}

// New parses the embedded dataset.
func New() (*Service, error) {
	overview, err := Parse(defaultDataset)
	if err != nil {
		return nil, err
	}
	return &Service{overview: overview}, nil
}

// MustNew is like New but panics on error.
func MustNew() *Service {
	s, err := New()
	if err != nil {
		panic(err)
	}
	return s
}

// Parse decodes a YAML dataset. Unknown keys are rejected.
func Parse(data []byte) (Overview, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var o Overview
	if err := dec.Decode(&o); err != nil {
		return Overview{}, errors.Join(ErrInvalidDataset, err)
	}
	if err := o.validate(); err != nil {
		return Overview{}, errors.Join(ErrInvalidDataset, err)
	}
	return o, nil
}

func (o Overview) validate() error {
	if len(o.Stats) == 0 {
		return errors.New("no stats")
	}
	if o.Range.To.Before(o.Range.From) {
		return fmt.Errorf("range ends before it starts")
	}
	for _, r := range o.Revenue {
		if r.Total < 0 {
			return fmt.Errorf("negative revenue for %s", r.Month)
		}
	}
	return nil
}

// Overview returns a copy of the dataset so callers cannot mutate the shared one.
func (s *Service) Overview(_ context.Context) Overview {
	o := s.overview
	o.Stats = slices.Clone(o.Stats)
	o.Revenue = slices.Clone(o.Revenue)
	o.RecentSales = slices.Clone(o.RecentSales)
	o.Teams = slices.Clone(o.Teams)
	for i := range o.Teams {
		o.Teams[i].Teams = slices.Clone(o.Teams[i].Teams)
	}
	return o
}
