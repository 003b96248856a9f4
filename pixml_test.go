package pixml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/hydrokit/pixml/decoder"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<TimeSeries version="1.2">
  <timeZone>0.0</timeZone>
  <series>
    <header>
      <type>instantaneous</type>
      <locationId>RIVA</locationId>
      <parameterId>QIN</parameterId>
      <timeStep unit="second" multiplier="3600"/>
      <startDate date="2013-03-01" time="00:00:00"/>
      <endDate date="2013-03-01" time="02:00:00"/>
      <missVal>-999.0</missVal>
      <stationName>River A</stationName>
      <units>m3/s</units>
    </header>
    <event date="2013-03-01" time="00:00:00" value="1.0"/>
    <event date="2013-03-01" time="01:00:00" value="2.0"/>
    <event date="2013-03-01" time="02:00:00" value="3.0"/>
  </series>
</TimeSeries>`

func TestDecodeFile(t *testing.T) {
	t.Run("BareDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.xml")
		require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))

		result, err := DecodeFile(path)
		require.NoError(t, err)
		require.Empty(t, result.Problems)
		require.Len(t, result.Series, 1)
		require.Equal(t, "RIVA.PI.QIN.1 Hour", result.Series[0].Identifier())
	})

	t.Run("GzipWrapped", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write([]byte(sampleDoc))
		require.NoError(t, err)
		require.NoError(t, w.Close())

		path := filepath.Join(t.TempDir(), "doc.xml.gz")
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

		result, err := DecodeFile(path)
		require.NoError(t, err)
		require.Empty(t, result.Problems)
		require.Len(t, result.Series, 1)
		require.Equal(t, 3, result.Series[0].Len())
	})

	t.Run("MissingFileIsAnError", func(t *testing.T) {
		_, err := DecodeFile(filepath.Join(t.TempDir(), "absent.xml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDecode(t *testing.T) {
	result, err := Decode(strings.NewReader(sampleDoc), "doc.xml",
		decoder.WithoutValues())
	require.NoError(t, err)
	require.Len(t, result.Series, 1)
	require.False(t, result.Series[0].Allocated())
}

func TestDecodeBytes(t *testing.T) {
	result, err := DecodeBytes([]byte(sampleDoc), "doc.xml")
	require.NoError(t, err)
	require.Len(t, result.Series, 1)

	ts := result.Find("RIVA.PI.QIN.1 Hour")
	require.NotNil(t, ts)
	require.Equal(t, "m3/s", ts.Units)
}
