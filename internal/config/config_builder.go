package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"

	"github.com/MKhiriev/progphil-bot/internal/configurator"
)

type bootstrapBuilder struct {
	layers []*Bootstrap
	err    error
}

func newBootstrapBuilder() *bootstrapBuilder {
	return &bootstrapBuilder{
		layers: make([]*Bootstrap, 0, 2),
	}
}

// build merges the layers in the order they were added; non-zero fields of a
// later layer override earlier ones.
func (b *bootstrapBuilder) build() (*Bootstrap, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building bootstrap options: %w", b.err)
	}

	bootstrap := new(Bootstrap)
	for _, layer := range b.layers {
		if err := mergo.Merge(bootstrap, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging bootstrap options: %w", err)
		}
	}

	if bootstrap.EnvFile == "" {
		bootstrap.EnvFile = configurator.DefaultPath
	}

	return bootstrap, nil
}

func (b *bootstrapBuilder) withEnv() *bootstrapBuilder {
	envLayer := &Bootstrap{}
	if err := parseEnv(envLayer); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envLayer)
	return b
}

func (b *bootstrapBuilder) withFlags(args []string) *bootstrapBuilder {
	flagLayer, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, flagLayer)
	return b
}
