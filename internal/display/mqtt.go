package display

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/frameloop/frameloop/internal/model"
)

// MQTT message handler for traffic on subscribed topics.
var messagePubHandler mqtt.MessageHandler = func(client mqtt.Client, msg mqtt.Message) {
	log.Debug().Str("topic", msg.Topic()).Msg("received mqtt message")
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// activeMessage is the wire format published to the display topic.
type activeMessage struct {
	Active *model.Media `json:"active"`
	At     time.Time    `json:"at"`
}

// MQTTPresenter publishes the active entry to display/<id>/active as a
// retained message, so a display that powers on mid-window immediately
// receives the current state instead of waiting for the next change.
type MQTTPresenter struct {
	client  mqtt.Client
	topic   string
	mu      sync.Mutex
	last    []byte
	hasLast bool
}

func NewMQTTPresenter(brokerURL, displayID string) (*MQTTPresenter, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(fmt.Sprintf("frameloop-%s", displayID))
	opts.SetDefaultPublishHandler(messagePubHandler)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler
	opts.SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("display: connect to MQTT broker: %w", token.Error())
	}

	return &MQTTPresenter{
		client: client,
		topic:  fmt.Sprintf("display/%s/active", displayID),
	}, nil
}

// Show publishes the entry when it differs from the last published state.
// Re-publishing an identical retained payload every tick would only churn the
// broker; the retained message already keeps late subscribers correct.
func (p *MQTTPresenter) Show(_ context.Context, media *model.Media) {
	payload, err := json.Marshal(activeMessage{Active: media, At: time.Now()})
	if err != nil {
		log.Error().Err(err).Msg("encoding active entry failed")
		return
	}

	p.mu.Lock()
	// The timestamp always differs, so compare only the entry itself.
	entry, _ := json.Marshal(media)
	if p.hasLast && string(entry) == string(p.last) {
		p.mu.Unlock()
		return
	}
	p.last = entry
	p.hasLast = true
	p.mu.Unlock()

	token := p.client.Publish(p.topic, 1, true, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", p.topic).Msg("publishing active entry failed")
	}
}

// Close disconnects from the broker, allowing in-flight messages to drain.
func (p *MQTTPresenter) Close() {
	p.client.Disconnect(250)
}
