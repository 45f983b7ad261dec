package elfcheck

import (
	"debug/elf"

	"github.com/juju/errors"
)

type Symbol struct {
	Name  string
	Value uint64
	Size  uint64
	Func  bool
}

// Image is the view of a firmware image Check needs.
type Image interface {
	Symbol(name string) (Symbol, error)
	// ReadInitial returns the bytes at addr as the image loads them.
	ReadInitial(addr, size uint64) ([]byte, error)
	Entry() uint64
	Executable(addr uint64) bool
}

// ELFImage is an Image backed by a 32-bit little-endian ARM ELF file.
type ELFImage struct {
	f       *elf.File
	symbols map[string]elf.Symbol
}

func Open(path string) (*ELFImage, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "opening %s", path)
	}
	img, err := NewELFImage(f)
	if err != nil {
		f.Close()
		return nil, errors.Annotatef(err, "%s", path)
	}
	return img, nil
}

func NewELFImage(f *elf.File) (*ELFImage, error) {
	if f.Class != elf.ELFCLASS32 || f.Data != elf.ELFDATA2LSB || f.Machine != elf.EM_ARM {
		return nil, errors.NotSupportedf("%v %v %v image", f.Class, f.Data, f.Machine)
	}
	syms, err := f.Symbols()
	if err != nil {
		return nil, errors.Annotatef(err, "reading symbol table")
	}
	img := &ELFImage{f: f, symbols: make(map[string]elf.Symbol, len(syms))}
	for _, s := range syms {
		if s.Name == "" || s.Section == elf.SHN_UNDEF {
			continue
		}
		img.symbols[s.Name] = s
	}
	return img, nil
}

func (img *ELFImage) Close() error {
	return img.f.Close()
}

func (img *ELFImage) Symbol(name string) (Symbol, error) {
	s, ok := img.symbols[name]
	if !ok {
		return Symbol{}, errors.NotFoundf("symbol %q", name)
	}
	return Symbol{
		Name:  s.Name,
		Value: s.Value,
		Size:  s.Size,
		Func:  elf.ST_TYPE(s.Info) == elf.STT_FUNC,
	}, nil
}

func (img *ELFImage) section(addr, size uint64) *elf.Section {
	for _, s := range img.f.Sections {
		if s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		if addr >= s.Addr && addr+size <= s.Addr+s.Size {
			return s
		}
	}
	return nil
}

func (img *ELFImage) ReadInitial(addr, size uint64) ([]byte, error) {
	s := img.section(addr, size)
	if s == nil {
		return nil, errors.NotFoundf("section holding 0x%08x", addr)
	}
	buf := make([]byte, size)
	if s.Type == elf.SHT_NOBITS {
		return buf, nil
	}
	if _, err := s.ReadAt(buf, int64(addr-s.Addr)); err != nil {
		return nil, errors.Annotatef(err, "reading %s at 0x%08x", s.Name, addr)
	}
	return buf, nil
}

func (img *ELFImage) Entry() uint64 {
	return img.f.Entry
}

// Executable ignores the Thumb bit.
func (img *ELFImage) Executable(addr uint64) bool {
	s := img.section(addr&^1, 1)
	return s != nil && s.Flags&elf.SHF_EXECINSTR != 0
}
