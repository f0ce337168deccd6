// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Config construction, bit access and in-place mutation.
// Determinism:
//   - Every operation is a pure function of the current bits and its arguments.
// Concurrency:
//   - None. A Config belongs to exactly one goroutine at a time.

package spin

import (
	"fmt"
	"strings"
)

// Config is a fixed-length sequence of site bits.
// The zero value is not usable; construct with New, Parse or Clone.
type Config struct {
	bits []uint8 // len(bits) == N for the whole lifetime; each element ∈ {0,1}
}

// New returns an all-zero (all spins up) configuration of n sites.
//
// Errors: ErrInvalidLength when n ≤ 0.
// Complexity: O(n).
func New(n int) (*Config, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spin.New(%d): %w", n, ErrInvalidLength)
	}

	return &Config{bits: make([]uint8, n)}, nil
}

// Parse builds a configuration from its textual form, e.g. "001100".
//
// Errors: ErrInvalidLength for an empty string, ErrInvalidBit for any rune
// other than '0' or '1'.
// Complexity: O(len(s)).
func Parse(s string) (*Config, error) {
	if s == "" {
		return nil, fmt.Errorf("spin.Parse: %w", ErrInvalidLength)
	}
	bits := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("spin.Parse: position %d (%q): %w", i, s[i], ErrInvalidBit)
		}
	}

	return &Config{bits: bits}, nil
}

// Len returns N.
func (c *Config) Len() int {
	return len(c.bits)
}

func (c *Config) checkIndex(method string, i int) error {
	if i < 0 || i >= len(c.bits) {
		return fmt.Errorf("Config.%s(%d): N=%d: %w", method, i, len(c.bits), ErrIndexOutOfRange)
	}

	return nil
}

// Flip toggles site i in place.
//
// Errors: ErrIndexOutOfRange; the configuration is untouched on error.
// Complexity: O(1).
func (c *Config) Flip(i int) error {
	if err := c.checkIndex("Flip", i); err != nil {
		return err
	}
	c.bits[i] ^= 1

	return nil
}

// FlipAll toggles every site (global spin reversal).
// Complexity: O(N).
func (c *Config) FlipAll() {
	for i := range c.bits {
		c.bits[i] ^= 1
	}
}

// Bit returns the raw bit at site i.
// Errors: ErrIndexOutOfRange.
func (c *Config) Bit(i int) (uint8, error) {
	if err := c.checkIndex("Bit", i); err != nil {
		return 0, err
	}

	return c.bits[i], nil
}

// Spin returns s_i = 1 − 2·bit_i, i.e. +1 or −1.
// Errors: ErrIndexOutOfRange.
func (c *Config) Spin(i int) (int, error) {
	if err := c.checkIndex("Spin", i); err != nil {
		return 0, err
	}

	return 1 - 2*int(c.bits[i]), nil
}

// CountOn returns the number of sites whose bit is set (spin −1).
// Complexity: O(N).
func (c *Config) CountOn() int {
	on := 0
	for _, b := range c.bits {
		on += int(b)
	}

	return on
}

// CountOff returns the number of sites whose bit is clear (spin +1).
// CountOn() + CountOff() == Len() always.
// Complexity: O(N).
func (c *Config) CountOff() int {
	return len(c.bits) - c.CountOn()
}

// SetList replaces all bits at once.
//
// Errors:
//   - ErrDimensionMismatch when len(values) != N.
//   - ErrInvalidBit when an element is not 0 or 1.
//
// Validation runs before any write, so a failed call leaves c unchanged.
// Complexity: O(N).
func (c *Config) SetList(values []int) error {
	if len(values) != len(c.bits) {
		return fmt.Errorf("Config.SetList: len=%d, N=%d: %w", len(values), len(c.bits), ErrDimensionMismatch)
	}
	for i, v := range values {
		if v != 0 && v != 1 {
			return fmt.Errorf("Config.SetList: values[%d]=%d: %w", i, v, ErrInvalidBit)
		}
	}
	for i, v := range values {
		c.bits[i] = uint8(v)
	}

	return nil
}

// SetInteger writes the binary expansion of v right-justified: the least
// significant bit lands on site N−1 and the expansion is zero-padded towards
// site 0. Only the low N bits of v are kept; higher bits are dropped.
// Complexity: O(N).
func (c *Config) SetInteger(v uint64) {
	n := len(c.bits)
	for k := 0; k < n; k++ {
		if k < 64 {
			c.bits[n-1-k] = uint8((v >> uint(k)) & 1)
		} else {
			c.bits[n-1-k] = 0
		}
	}
}

// Integer returns the big-endian value of the bits, site 0 being the most
// significant. For N > 64 only the last 64 sites contribute.
// Complexity: O(N).
func (c *Config) Integer() uint64 {
	var v uint64
	for _, b := range c.bits {
		v = v<<1 | uint64(b)
	}

	return v
}

// Equal reports whether both configurations have the same length and bits.
// A nil configuration equals only another nil.
func (c *Config) Equal(other *Config) bool {
	if c == nil || other == nil {
		return c == other
	}
	if len(c.bits) != len(other.bits) {
		return false
	}
	for i := range c.bits {
		if c.bits[i] != other.bits[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	bits := make([]uint8, len(c.bits))
	copy(bits, c.bits)

	return &Config{bits: bits}
}

// CopyFrom overwrites c with the bits of src.
// Errors: ErrDimensionMismatch.
func (c *Config) CopyFrom(src *Config) error {
	if len(src.bits) != len(c.bits) {
		return fmt.Errorf("Config.CopyFrom: len=%d, N=%d: %w", len(src.bits), len(c.bits), ErrDimensionMismatch)
	}
	copy(c.bits, src.bits)

	return nil
}

// View exposes the live bit slice for hot loops (energy sums, sweeps).
// Callers must treat it as read-only and must not retain it past the
// next mutation they do not own.
func (c *Config) View() []uint8 {
	return c.bits
}

// String renders the bits as '0'/'1' characters, site 0 first.
func (c *Config) String() string {
	var sb strings.Builder
	sb.Grow(len(c.bits))
	for _, b := range c.bits {
		sb.WriteByte('0' + b)
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler using String.
func (c *Config) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse. A zero Config
// takes the parsed length; an existing one keeps N and is overwritten in place.
// Errors: ErrInvalidLength, ErrInvalidBit, ErrDimensionMismatch.
func (c *Config) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	if c.bits == nil {
		c.bits = parsed.bits
		return nil
	}
	if len(parsed.bits) != len(c.bits) {
		return fmt.Errorf("Config.UnmarshalText: len=%d, N=%d: %w", len(parsed.bits), len(c.bits), ErrDimensionMismatch)
	}
	copy(c.bits, parsed.bits)

	return nil
}
