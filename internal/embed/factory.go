// internal/embed/factory.go
package embed

import (
	"fmt"
	"log/slog"

	"github.com/llehouerou/podcards/internal/logging"
)

// DefaultHost is the restricted-domain variant of the provider host.
const DefaultHost = "https://www.youtube-nocookie.com"

// Factory builds widgets bound to mounted containers.
type Factory struct {
	doc      *Document
	loader   *Loader
	provider Provider
	host     string
	origin   string
	logger   *slog.Logger
}

// FactoryConfig holds the page-level parameters shared by all widgets.
type FactoryConfig struct {
	Host   string
	Origin string
}

// NewFactory creates a widget factory.
func NewFactory(doc *Document, loader *Loader, provider Provider, cfg FactoryConfig, logger *slog.Logger) *Factory {
	if logger == nil {
		logger = logging.NewNop()
	}
	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}
	return &Factory{
		doc:      doc,
		loader:   loader,
		provider: provider,
		host:     host,
		origin:   cfg.Origin,
		logger:   logger.With(logging.FieldComponent, "factory"),
	}
}

// Create builds one widget for contentID inside the container containerID.
// The container must be mounted and the runtime loaded. onReady and
// onStateChange are forwarded to the widget unchanged.
func (f *Factory) Create(
	containerID, contentID string,
	onReady func(Widget),
	onStateChange func(State),
) (Widget, error) {
	c, ok := f.doc.Lookup(containerID)
	if !ok {
		return nil, fmt.Errorf("create widget in %q: %w", containerID, ErrContainerNotFound)
	}
	if !f.loader.Loaded() {
		return nil, fmt.Errorf("create widget in %q: %w", containerID, ErrNotLoaded)
	}

	opts := Options{
		ContentID: contentID,
		Host:      f.host,
		PlayerVars: PlayerVars{
			RelatedContent: false,
			InlinePlayback: true,
			Origin:         f.origin,
			Autoplay:       false,
		},
	}

	w, err := f.provider.NewWidget(c, opts, Events{
		OnReady:       onReady,
		OnStateChange: onStateChange,
	})
	if err != nil {
		return nil, fmt.Errorf("create widget in %q: %w", containerID, err)
	}

	f.logger.Debug("widget created",
		logging.FieldContainerID, containerID,
		logging.FieldContentID, contentID)
	return w, nil
}
