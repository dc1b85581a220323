package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/suite"

	"github.com/shockbase/levelborder/internal/model"
	"github.com/shockbase/levelborder/internal/testutil"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type KafkaPublisherSuite struct {
	suite.Suite
	writer    *fakeWriter
	publisher *KafkaPublisher
	ctx       context.Context
	event     model.Event
}

func TestKafkaPublisherSuite(t *testing.T) {
	suite.Run(t, new(KafkaPublisherSuite))
}

func (s *KafkaPublisherSuite) SetupTest() {
	s.writer = &fakeWriter{}
	s.publisher = newKafkaPublisher(s.writer, testutil.NopLogger())
	s.ctx = context.Background()
	s.event = model.Event{
		Type:      model.EventLevelChanged,
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Player: model.PlayerSnapshot{
			ID:       uuid.New(),
			Name:     "Steve",
			Location: model.Location{World: "world"},
		},
		Payload: model.LevelChangePayload{OldLevel: 3, NewLevel: 5},
	}
}

func (s *KafkaPublisherSuite) TestPublishKeysByPlayer() {
	s.Require().NoError(s.publisher.Publish(s.ctx, s.event))

	s.Require().Len(s.writer.messages, 1)
	s.Equal(s.event.Player.ID.String(), string(s.writer.messages[0].Key))
}

func (s *KafkaPublisherSuite) TestPublishWritesMessage() {
	s.Require().NoError(s.publisher.Publish(s.ctx, s.event))

	var msg Message
	s.Require().NoError(json.Unmarshal(s.writer.messages[0].Value, &msg))
	s.NotEmpty(msg.EventID)
	s.Equal("level_changed", msg.EventType)
	s.Equal(Source, msg.Source)
	s.Equal("Steve", msg.PlayerName)
	s.Equal("world", msg.World)
	s.True(s.event.Timestamp.Equal(msg.Timestamp))
	s.JSONEq(`{"old_level":3,"new_level":5}`, string(msg.Payload))
}

func (s *KafkaPublisherSuite) TestPublishWithoutPayload() {
	s.event.Type = model.EventPlayerDied
	s.event.Payload = nil
	s.Require().NoError(s.publisher.Publish(s.ctx, s.event))

	var raw map[string]any
	s.Require().NoError(json.Unmarshal(s.writer.messages[0].Value, &raw))
	s.NotContains(raw, "payload")
}

func (s *KafkaPublisherSuite) TestPublishReturnsWriterError() {
	s.writer.err = errors.New("broker down")

	err := s.publisher.Publish(s.ctx, s.event)
	s.EqualError(err, "broker down")
}

func (s *KafkaPublisherSuite) TestEventIDsAreUnique() {
	_ = s.publisher.Publish(s.ctx, s.event)
	_ = s.publisher.Publish(s.ctx, s.event)

	var first, second Message
	s.Require().NoError(json.Unmarshal(s.writer.messages[0].Value, &first))
	s.Require().NoError(json.Unmarshal(s.writer.messages[1].Value, &second))
	s.NotEqual(first.EventID, second.EventID)
}

func (s *KafkaPublisherSuite) TestClose() {
	s.Require().NoError(s.publisher.Close())
	s.True(s.writer.closed)
}

func (s *KafkaPublisherSuite) TestNopPublisher() {
	var p Publisher = NopPublisher{}
	s.NoError(p.Publish(s.ctx, s.event))
	s.NoError(p.Close())
}
