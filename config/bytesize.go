package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Constants representing various SI multiples for bytes.
const (
	KB = 1024
	MB = 1024 * KB
	GB = 1024 * MB
)

// ByteSize provides a YAML-serializable format for byte size definitions,
// e.g. "512KB" or "32MB".
type ByteSize int64

// MarshalYAML implements the YAML encoding interface.
func (b ByteSize) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

func (b ByteSize) String() string {
	switch {
	case b != 0 && b%GB == 0:
		return strconv.FormatInt(int64(b/GB), 10) + "GB"
	case b != 0 && b%MB == 0:
		return strconv.FormatInt(int64(b/MB), 10) + "MB"
	case b != 0 && b%KB == 0:
		return strconv.FormatInt(int64(b/KB), 10) + "KB"
	default:
		return strconv.FormatInt(int64(b), 10) + "B"
	}
}

// UnmarshalYAML implements the YAML decoding interface.
func (b *ByteSize) UnmarshalYAML(unmarshal func(interface{}) error) error {
	raw := ""
	if err := unmarshal(&raw); err != nil {
		return err
	}
	size, err := ParseByteSize(raw)
	if err != nil {
		return err
	}
	*b = size
	return nil
}

// ParseByteSize decodes sizes of the form <digits><unit> where the unit is
// one of b, kb, mb or gb (case-insensitive, optional).
func ParseByteSize(raw string) (ByteSize, error) {
	raw = strings.TrimSpace(raw)
	idx := 0
	for idx < len(raw) && raw[idx] >= '0' && raw[idx] <= '9' {
		idx++
	}
	if idx == 0 {
		return 0, errors.Errorf("config: unable to decode ByteSize value: %q", raw)
	}
	val, err := strconv.ParseInt(raw[:idx], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "config: unable to decode ByteSize value: %q", raw)
	}
	var mult int64
	switch strings.ToLower(strings.TrimSpace(raw[idx:])) {
	case "", "b", "byte", "bytes":
		mult = 1
	case "k", "kb":
		mult = KB
	case "m", "mb":
		mult = MB
	case "g", "gb":
		mult = GB
	default:
		return 0, errors.Errorf("config: unable to decode ByteSize value: %q", raw)
	}
	if val > (1<<63-1)/mult {
		return 0, errors.Errorf("config: ByteSize value %q overflows int64", raw)
	}
	return ByteSize(val * mult), nil
}
