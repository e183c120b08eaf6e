package parser

import (
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"item-parser/internal/item"
	"item-parser/internal/localization"
)

const idSockets = "ItemDisplayStringSockets"

var socketsPattern = regexp.MustCompile(`^[RGBWAD](?:-[RGBWAD])*(?: [RGBWAD](?:-[RGBWAD])*)*$`)

// SocketsParser reads "Sockets: R-G-B B" into linked groups.
type SocketsParser struct{}

func (p *SocketsParser) Kind() item.SectionKind { return item.SectionSockets }

func (p *SocketsParser) Optional() bool { return true }

func (p *SocketsParser) Parse(loc *localization.Localizer, exported *item.ExportedItem, target *item.Item) ([]*item.Section, error) {
	label, err := loc.ClientString(idSockets)
	if err != nil {
		log.Warn().Err(err).Msg("Sockets label unavailable")
		return nil, nil
	}

	for _, s := range exported.Sections {
		for _, line := range s.Lines {
			value, ok := labelValue(line, label)
			if !ok || !socketsPattern.MatchString(value) {
				continue
			}
			for _, group := range strings.Fields(value) {
				target.Sockets = append(target.Sockets, item.SocketGroup{Colors: strings.Split(group, "-")})
			}
			return []*item.Section{s}, nil
		}
	}
	return nil, nil
}
