package dispatch

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ClassWYZ/floodlight/pkg/devicemanager"
	"github.com/ClassWYZ/floodlight/pkg/logger"
	"github.com/ClassWYZ/floodlight/pkg/models"
)

// fakeMsg satisfies jetstream.Msg for the methods Process touches.
type fakeMsg struct {
	jetstream.Msg
	data []byte
}

func (m *fakeMsg) Data() []byte { return m.data }

func arpFrame(srcMAC uint64, senderIP uint32) []byte {
	b := make([]byte, 14+28)
	for i := 0; i < 6; i++ {
		b[i] = 0xff
		b[6+i] = byte(srcMAC >> (40 - 8*i))
	}
	binary.BigEndian.PutUint16(b[12:14], 0x0806)

	p := b[14:]
	binary.BigEndian.PutUint16(p[0:2], 1)
	binary.BigEndian.PutUint16(p[2:4], 0x0800)
	p[4] = 6
	p[5] = 4
	binary.BigEndian.PutUint16(p[6:8], 2)
	binary.BigEndian.PutUint32(p[14:18], senderIP)

	return b
}

func TestProcessLearnsDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := devicemanager.NewMockService(ctrl)
	svc.EXPECT().
		LearnDeviceByEntity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *models.Entity) (*devicemanager.Device, error) {
			assert.Equal(t, uint64(0x004433221100), e.MAC)
			require.NotNil(t, e.IPv4)
			assert.Equal(t, uint32(0xc0a80101), *e.IPv4)
			assert.Equal(t, uint64(7), e.SwitchDPID)
			assert.Equal(t, 3, e.SwitchPort)

			return &devicemanager.Device{}, nil
		})

	payload, err := json.Marshal(&models.PacketIn{
		SwitchDPID: 7,
		Port:       3,
		Data:       arpFrame(0x004433221100, 0xc0a80101),
		Timestamp:  time.Now(),
	})
	require.NoError(t, err)

	p := NewProcessor(svc, logger.NewTestLogger())
	assert.NoError(t, p.Process(context.Background(), &fakeMsg{data: payload}))
}

func TestProcessRejectsBadMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := devicemanager.NewMockService(ctrl)
	p := NewProcessor(svc, logger.NewTestLogger())

	err := p.Process(context.Background(), &fakeMsg{})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	err = p.Process(context.Background(), &fakeMsg{data: []byte("not json")})
	assert.ErrorIs(t, err, ErrUnmarshal)
}

func TestProcessDropsUnusableFrames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No LearnDeviceByEntity expectation: the truncated frame never
	// reaches the registry, and the message is not retried.
	svc := devicemanager.NewMockService(ctrl)

	payload, err := json.Marshal(&models.PacketIn{
		SwitchDPID: 7,
		Port:       3,
		Data:       []byte{0x01, 0x02, 0x03},
	})
	require.NoError(t, err)

	p := NewProcessor(svc, logger.NewTestLogger())
	assert.NoError(t, p.Process(context.Background(), &fakeMsg{data: payload}))
}

func TestProcessSurfacesLearnErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	learnErr := errors.New("registry unavailable")

	svc := devicemanager.NewMockService(ctrl)
	svc.EXPECT().
		LearnDeviceByEntity(gomock.Any(), gomock.Any()).
		Return(nil, learnErr)

	payload, err := json.Marshal(&models.PacketIn{
		SwitchDPID: 1,
		Port:       1,
		Data:       arpFrame(0x004433221100, 0xc0a80101),
	})
	require.NoError(t, err)

	p := NewProcessor(svc, logger.NewTestLogger())
	assert.ErrorIs(t, p.Process(context.Background(), &fakeMsg{data: payload}), learnErr)
}
