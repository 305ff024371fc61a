package wordid

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
	"lukechampine.com/uint128"
)

type record struct {
	Short  ID16  `json:"short" yaml:"short"`
	Medium ID32  `json:"medium" yaml:"medium"`
	Long   ID64  `json:"long" yaml:"long"`
	Huge   ID128 `json:"huge" yaml:"huge"`
}

func sampleRecord() record {
	return record{
		Short:  42,
		Medium: 103505039,
		Long:   0x0123456789abcdef,
		Huge:   ID128(uint128.New(0xfedcba9876543210, 0x0123456789abcdef)),
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := sampleRecord()
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(data), `"short":"The giant gorilla"`)
	require.Contains(t, string(data), `"medium":"The brave fox jumps swiftly"`)
	var out record
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestYAMLRoundTrip(t *testing.T) {
	in := sampleRecord()
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(data), "short: The giant gorilla")
	var out record
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestUnmarshalAcceptsCompactForm(t *testing.T) {
	var id ID32
	require.NoError(t, id.UnmarshalText([]byte("brave-fox-jumps-swiftly")))
	require.Equal(t, ID32(103505039), id)
}

func TestUnmarshalErrors(t *testing.T) {
	var r record
	err := json.Unmarshal([]byte(`{"short":"the light"}`), &r)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "cannot unmarshal"), err.Error())
	var ierr *InsufficientWordsError
	require.ErrorAs(t, err, &ierr)

	var id ID64
	err = id.UnmarshalText([]byte("the brave fox jumps swiftly"))
	require.ErrorAs(t, err, &ierr)
	require.EqualError(t, err,
		`wordid: cannot unmarshal "the brave fox jumps swiftly" into ID64: phrase: not enough words, expected 11, actual 4`)

	err = yaml.Unmarshal([]byte("medium: the brave fox jumps swiftly twice\n"), &r)
	require.ErrorIs(t, err, ErrTrailingWords)
}

func TestIDString(t *testing.T) {
	require.Equal(t, "The giant gorilla", ID16(42).String())
	require.Equal(t, "The light gorilla orders kindly", ID32(0).String())
}
