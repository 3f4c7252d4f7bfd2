// Package cartridge reads iNES and NES 2.0 cartridge images and slices them
// into their trainer, PRG-ROM and CHR-ROM sections.
package cartridge

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/Urethramancer/nesdis/logger"
)

const (
	// HeaderSize is the size of the fixed header at the start of the image.
	HeaderSize = 16
	// TrainerSize is the size of the optional trainer after the header.
	TrainerSize = 512

	prgUnitShift = 14 // 16 KiB
	chrUnitShift = 13 // 8 KiB
	ramUnitShift = 13 // 8 KiB

	logTag = "cartridge"
)

var magic = []byte{'N', 'E', 'S', 0x1A}

var (
	// ErrBadMagic is returned for data that is not a cartridge image.
	ErrBadMagic = errors.New("not an iNES image")
	// ErrTruncated is returned when a section is shorter than the header says.
	ErrTruncated = errors.New("truncated image")
)

// Arrangement is the nametable arrangement from flags 6.
type Arrangement int

const (
	// Vertical arrangement (horizontal mirroring).
	Vertical Arrangement = iota
	// Horizontal arrangement (vertical mirroring).
	Horizontal
)

func (a Arrangement) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// TVSystem is the video standard from flags 9.
type TVSystem int

const (
	NTSC TVSystem = iota
	PAL
)

func (tv TVSystem) String() string {
	if tv == PAL {
		return "PAL"
	}
	return "NTSC"
}

// Version is the header format, taken from bits 2-3 of flags 7.
type Version int

const (
	INES Version = iota
	ArchaicINES
	NES20
	Unknown
)

func (v Version) String() string {
	switch v {
	case INES:
		return "iNES"
	case ArchaicINES:
		return "archaic iNES"
	case NES20:
		return "NES 2.0"
	}
	return "unknown"
}

// Header holds the decoded header fields. Sizes are in bytes.
type Header struct {
	PRGSize    int
	CHRSize    int
	PRGRAMSize int

	Arrangement   Arrangement
	Persistent    bool
	Trainer       bool
	AltNametables bool
	VSUnisystem   bool
	PlayChoice10  bool
	Mapper        uint8
	TV            TVSystem
	Version       Version
}

// ParseHeader decodes the 16-byte header at the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		if len(data) >= len(magic) && !bytes.Equal(data[:len(magic)], magic) {
			return h, ErrBadMagic
		}
		return h, errors.Wrapf(ErrTruncated, "header is %d bytes", len(data))
	}
	if !bytes.Equal(data[:len(magic)], magic) {
		return h, ErrBadMagic
	}

	h.PRGSize = int(data[4]) << prgUnitShift
	h.CHRSize = int(data[5]) << chrUnitShift
	flags6 := data[6]
	flags7 := data[7]
	h.PRGRAMSize = int(data[8]) << ramUnitShift

	h.Arrangement = Arrangement(flags6 & 0x01)
	h.Persistent = flags6&0x02 != 0
	h.Trainer = flags6&0x04 != 0
	h.AltNametables = flags6&0x08 != 0

	h.VSUnisystem = flags7&0x01 != 0
	h.PlayChoice10 = flags7&0x02 != 0
	h.Mapper = flags7&0xF0 | flags6>>4

	h.TV = TVSystem(data[9] & 0x01)

	switch flags7 & 0x0C {
	case 0x00:
		h.Version = INES
	case 0x04:
		h.Version = ArchaicINES
	case 0x08:
		h.Version = NES20
	default:
		h.Version = Unknown
	}
	return h, nil
}

func (h Header) String() string {
	return fmt.Sprintf("%s, mapper %d, PRG-ROM %d KiB, CHR-ROM %d KiB, PRG-RAM %d KiB, %s arrangement, %s, trainer %t, battery %t",
		h.Version, h.Mapper, h.PRGSize>>10, h.CHRSize>>10, h.PRGRAMSize>>10, h.Arrangement, h.TV, h.Trainer, h.Persistent)
}

// Cartridge is a parsed image.
type Cartridge struct {
	Header
	TrainerData []byte
	PRG         []byte
	CHR         []byte
}

// Parse decodes a complete image. The sections share memory with data.
func Parse(data []byte) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	c := &Cartridge{Header: h}
	pos := HeaderSize
	section := func(name string, size int) ([]byte, error) {
		if pos+size > len(data) {
			return nil, errors.Wrapf(ErrTruncated, "%s needs %d bytes at offset %d, %d available",
				name, size, pos, len(data)-pos)
		}
		s := data[pos : pos+size : pos+size]
		pos += size
		return s, nil
	}

	if h.Trainer {
		if c.TrainerData, err = section("trainer", TrainerSize); err != nil {
			return nil, err
		}
	}
	if c.PRG, err = section("PRG-ROM", h.PRGSize); err != nil {
		return nil, err
	}
	if c.CHR, err = section("CHR-ROM", h.CHRSize); err != nil {
		return nil, err
	}

	logger.Logf(logTag, "%s", h)
	if pos < len(data) {
		logger.Logf(logTag, "%d trailing bytes ignored", len(data)-pos)
	}
	return c, nil
}

// Load reads and parses the image at path.
func Load(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading cartridge")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return c, nil
}
