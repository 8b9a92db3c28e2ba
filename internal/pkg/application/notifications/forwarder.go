package notifications

import (
	"context"
	"fmt"
	"io"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	yaml "gopkg.in/yaml.v2"
)

// EventForwarder pushes notifications to external dispatch endpoints
// (district dashboards, 911 integrations) as CloudEvents over HTTP.
type EventForwarder struct {
	subscribers map[string][]SubscriberConfig
}

func NewEventForwarder(cfg *Config) *EventForwarder {
	f := &EventForwarder{
		subscribers: make(map[string][]SubscriberConfig),
	}

	if cfg != nil {
		for _, s := range cfg.Notifications {
			f.subscribers[s.Type] = s.Subscribers
		}
	}

	return f
}

func (f *EventForwarder) Forward(ctx context.Context, n Notification) error {
	subscribers, ok := f.subscribers[n.JobType]
	if !ok || len(subscribers) == 0 {
		return nil
	}

	if n.EntityID == "" {
		return ErrNoEntity
	}

	c, err := cloudevents.NewClientHTTP()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(fmt.Sprintf("%s:%d", n.EntityID, n.Timestamp.Unix()))
	event.SetTime(n.Timestamp)
	event.SetSource("github.com/SafeSchoolOS/safeschool-os-sub002")
	event.SetType(n.JobType)

	err = event.SetData(cloudevents.ApplicationJSON, n)
	if err != nil {
		return err
	}

	log := logging.GetFromContext(ctx)

	for _, s := range subscribers {
		ctxWithTarget := cloudevents.ContextWithTarget(ctx, s.Endpoint)

		result := c.Send(ctxWithTarget, event)
		if cloudevents.IsUndelivered(result) {
			log.Error("failed to send event", "endpoint", s.Endpoint, "err", result.Error())
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type NotificationConfig struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []NotificationConfig `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
