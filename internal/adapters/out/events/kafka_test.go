package events

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"relocation/internal/core/domain/model/booking"
	"relocation/internal/core/domain/model/kernel"
	"relocation/internal/core/domain/model/shipment"
	"relocation/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var (
	_ ports.EventPublisher = (*KafkaPublisher)(nil)
	_ ports.EventPublisher = (*LogPublisher)(nil)
)

type writerMock struct {
	mock.Mock
}

func (m *writerMock) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

type KafkaPublisherSuite struct {
	suite.Suite
	wm *writerMock
	p  *KafkaPublisher
}

func (s *KafkaPublisherSuite) SetupTest() {
	s.wm = &writerMock{}
	s.p = newKafkaPublisherWithWriter(s.wm, "relocation.events")
}

func (s *KafkaPublisherSuite) TestNewKafkaPublisher_NotNil() {
	p := NewKafkaPublisher([]string{"localhost:0"}, "t")
	s.Require().NotNil(p)
	s.Require().NoError(p.Close())
}

func (s *KafkaPublisherSuite) TestPublish_KeysByAggregate() {
	bookingID := kernel.NewUUID()
	shipmentID := kernel.NewUUID()
	at := time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC)
	events := []kernel.DomainEvent{
		booking.StatusChanged{Name: booking.EventConfirmed, BookingID: bookingID, From: "pending", To: "confirmed", At: at},
		shipment.StatusChanged{ShipmentID: shipmentID, TrackingNumber: "TRK-1", From: "preparing", To: "in_transit", At: at},
	}

	s.wm.
		On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
			if len(msgs) != 2 {
				return false
			}
			first, second := msgs[0], msgs[1]
			return first.Topic == "relocation.events" &&
				string(first.Key) == bookingID.String() &&
				string(first.Headers[0].Value) == booking.EventConfirmed &&
				bytes.Contains(first.Value, []byte(`"to":"confirmed"`)) &&
				string(second.Key) == shipmentID.String() &&
				string(second.Headers[0].Value) == shipment.EventStatusChanged &&
				second.Time.Equal(at)
		})).
		Return(nil).
		Once()

	s.Require().NoError(s.p.Publish(context.Background(), events...))
	s.wm.AssertExpectations(s.T())
}

func (s *KafkaPublisherSuite) TestPublish_NothingToSend() {
	s.Require().NoError(s.p.Publish(context.Background()))
	s.wm.AssertNotCalled(s.T(), "WriteMessages", mock.Anything, mock.Anything)
}

func (s *KafkaPublisherSuite) TestPublish_WriterError() {
	s.wm.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	err := s.p.Publish(context.Background(), shipment.StatusChanged{ShipmentID: kernel.NewUUID()})

	s.Require().Error(err)
	s.Contains(err.Error(), "kafka publish")
}

func TestKafkaPublisherSuite(t *testing.T) {
	suite.Run(t, new(KafkaPublisherSuite))
}

func TestLogPublisher_WritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(zerolog.New(&buf).Level(zerolog.DebugLevel))

	err := p.Publish(context.Background(),
		booking.StatusChanged{Name: booking.EventCancelled, BookingID: kernel.NewUUID()},
		shipment.StatusChanged{ShipmentID: kernel.NewUUID()},
	)

	require.NoError(t, err)
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
	require.Contains(t, buf.String(), booking.EventCancelled)
}
