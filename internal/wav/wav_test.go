package wav

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	gowav "github.com/youpy/go-wav"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

func TestEncodeHeader(t *testing.T) {
	data, err := Encode([]float64{0, 0.25, -1}, 44100)
	require.NoError(t, err)
	require.Len(t, data, 44+6)

	require.Equal(t, "RIFF", string(data[0:4]))
	require.Equal(t, "WAVE", string(data[8:12]))
	require.Equal(t, "fmt ", string(data[12:16]))
	require.Equal(t, "data", string(data[36:40]))

	le := binary.LittleEndian
	require.Equal(t, uint32(36+6), le.Uint32(data[4:]))
	require.Equal(t, uint16(1), le.Uint16(data[20:]))
	require.Equal(t, uint16(1), le.Uint16(data[22:]))
	require.Equal(t, uint32(44100), le.Uint32(data[24:]))
	require.Equal(t, uint32(44100*2), le.Uint32(data[28:]))
	require.Equal(t, uint16(2), le.Uint16(data[32:]))
	require.Equal(t, uint16(16), le.Uint16(data[34:]))
	require.Equal(t, uint32(6), le.Uint32(data[40:]))

	require.Equal(t, int16(0), int16(le.Uint16(data[44:])))
	require.Equal(t, int16(8192), int16(le.Uint16(data[46:])))
	require.Equal(t, int16(-32767), int16(le.Uint16(data[48:])))
}

func TestEncodeReadsBack(t *testing.T) {
	in := []float64{0.5, -0.5, 0.25, 1}
	data, err := EncodeChannels(in, 8000, 2)
	require.NoError(t, err)

	r := gowav.NewReader(bytes.NewReader(data))
	format, err := r.Format()
	require.NoError(t, err)
	require.Equal(t, uint16(2), format.NumChannels)
	require.Equal(t, uint32(8000), format.SampleRate)
	require.Equal(t, uint16(16), format.BitsPerSample)

	got, err := r.ReadSamples(uint32(len(in)))
	require.NoError(t, err)
	require.Len(t, got, len(in))
	for i, s := range got {
		require.Equal(t, PCM16(in[i]), r.IntValue(s, 0), "sample %d left", i)
		require.Equal(t, PCM16(in[i]), r.IntValue(s, 1), "sample %d right", i)
	}
}

func TestPCM16Clips(t *testing.T) {
	require.Equal(t, math.MaxInt16, PCM16(1))
	require.Equal(t, math.MaxInt16, PCM16(6))
	require.Equal(t, -math.MaxInt16, PCM16(-3))
	require.Equal(t, 0, PCM16(0))
}

func TestEncodeRejects(t *testing.T) {
	_, err := Encode([]float64{0}, 0)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = EncodeChannels([]float64{0}, 44100, 0)
	require.ErrorIs(t, err, core.ErrInvalidArgument)

	_, err = EncodeChannels([]float64{0}, 44100, 3)
	require.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sine.wav")
	require.NoError(t, WriteFile(path, []float64{0, 1}, 44100))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 44+4)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "x.wav"), []float64{0}, 44100)
	require.Error(t, err)
}
