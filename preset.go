package img2se

import (
	"strings"

	"github.com/google/uuid"
)

// BlockSize is a placeable block type together with its grid step.
type BlockSize struct {
	Key   string
	Name  string
	Scale int
	// TypeID must match the block definition id the importer expects.
	TypeID uuid.UUID
}

var (
	Large      = BlockSize{"large", "Large Block", 10, uuid.MustParse("2eacbbf2-d8fb-4a78-91dc-7b492517ef97")}
	Small      = BlockSize{"small", "Small Block", 2, uuid.MustParse("632d7385-12b9-47a6-802a-a610d0cbd1e0")}
	Detailing  = BlockSize{"detailing", "Detailing Block", 1, uuid.MustParse("6c5ed351-0868-40c8-9cf3-3dd9bc201f46")}
	HeavyLarge = BlockSize{"heavy-large", "Heavy Large Block", 10, uuid.MustParse("d4915136-8884-4cf8-9480-f5c98a76c8cf")}
	HeavySmall = BlockSize{"heavy-small", "Heavy Small Block", 2, uuid.MustParse("aa7cb050-c0d6-4311-8ee8-fdc96600b1a2")}
)

// Presets returns all known block sizes.
func Presets() []BlockSize {
	return []BlockSize{Large, Small, Detailing, HeavyLarge, HeavySmall}
}

// Selectable returns the block sizes offered to users, smallest first.
func Selectable() []BlockSize {
	return []BlockSize{Detailing, Small, Large}
}

// PresetByName finds a preset by key or display name, ignoring case.
func PresetByName(name string) (BlockSize, bool) {
	name = strings.TrimSpace(name)
	for _, b := range Presets() {
		if strings.EqualFold(b.Key, name) || strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return BlockSize{}, false
}

func (b BlockSize) String() string {
	return b.Name
}
