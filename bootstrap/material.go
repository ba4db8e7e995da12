package bootstrap

import (
	"context"

	"cubeview/quarkgl"
	"cubeview/shader"

	"golang.org/x/sync/errgroup"
)

// TextLoader fetches a text resource by URL.
type TextLoader interface {
	Load(ctx context.Context, url string) (string, error)
}

// MaterialSource builds the cube material. Implementations may block.
type MaterialSource interface {
	Material(ctx context.Context) (quarkgl.Material, error)
}

// ShaderSource builds a shader material from two fetched sources.
type ShaderSource struct {
	Loader      TextLoader
	VertexURL   string
	FragmentURL string
}

func (s ShaderSource) Material(ctx context.Context) (quarkgl.Material, error) {
	return BuildShaderMaterial(ctx, s.Loader, s.VertexURL, s.FragmentURL)
}

// StandardSource builds a lit, non-shader material. It never fails.
type StandardSource struct {
	Color     quarkgl.Color
	Wireframe bool
}

func (s StandardSource) Material(context.Context) (quarkgl.Material, error) {
	m := quarkgl.NewStandardMaterial(s.Color)
	m.Wireframe = s.Wireframe
	return m, nil
}

// BuildShaderMaterial fetches both sources concurrently and compiles them.
// The first load failure cancels the other fetch and its result is dropped.
// Errors are *loader.ResourceLoadError from l or *shader.CompileError.
func BuildShaderMaterial(ctx context.Context, l TextLoader, vertexURL, fragmentURL string) (*quarkgl.ShaderMaterial, error) {
	var vertexSrc, fragmentSrc string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		src, err := l.Load(gctx, vertexURL)
		if err != nil {
			return err
		}
		vertexSrc = src
		return nil
	})
	g.Go(func() error {
		src, err := l.Load(gctx, fragmentURL)
		if err != nil {
			return err
		}
		fragmentSrc = src
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	prog, err := shader.Compile(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return quarkgl.NewShaderMaterial(prog), nil
}
