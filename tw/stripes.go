package tw

import "fmt"

// stripeGradient is the fixed two-stripe diagonal pattern. The stops are
// part of the visual contract and must not change.
const stripeGradient = "linear-gradient(%s, %s 10%%, transparent 0, transparent 50%%, %s 0, %s 60%%, transparent 0, transparent)"

// GenerateFromTable derives one stripes utility per colour in table.
//
// Single families produce "<prefix>-<name>". Scales produce
// "<prefix>-<name>-<shade>" per shade, with the DEFAULT shade mapped to
// "<prefix>-<name>". Within a scale each shade's fill is the previous
// shade rendered at the background opacity; the first shade fills with
// itself. Invalid families and empty shades are skipped.
func GenerateFromTable(table ColorTable, opts Options) UtilityMap {
	cfg := opts.Resolve()
	utilities := make(UtilityMap)
	log := Logger()

	for _, family := range table {
		switch entry := family.Entry.(type) {
		case Single:
			utilities[cfg.className(family.Name)] = cfg.declaration(string(entry), "")

		case Scale:
			previous := ""
			for _, shade := range entry {
				if shade.Value == "" {
					log.Debug("skipping empty shade", "family", family.Name, "shade", shade.Key)
					continue
				}
				key := family.Name
				if shade.Key != DefaultShade {
					key = family.Name + "-" + shade.Key
				}
				utilities[cfg.className(key)] = cfg.declaration(shade.Value, previous)
				previous = shade.Value
			}

		case Invalid:
			log.Debug("skipping colour family", "family", family.Name, "reason", entry.Reason)

		default:
			log.Debug("skipping colour family", "family", family.Name, "reason", "unclassified entry")
		}
	}

	return utilities
}

// GenerateForValue derives the stripes declaration for one arbitrary
// colour. There is no previous shade, so the fill derives from value
// itself. An empty value yields the empty Declaration.
func GenerateForValue(value string, opts Options) Declaration {
	if value == "" {
		return Declaration{}
	}
	return opts.Resolve().declaration(value, "")
}

// declaration builds the block for color, filling from previous when set.
func (c Config) declaration(color, previous string) Declaration {
	stripe := WithOpacity(color, c.Opacity)
	fill := color
	if previous != "" {
		fill = previous
	}
	return Declaration{
		BackgroundColor: WithOpacity(fill, c.BgOpacity),
		BackgroundImage: fmt.Sprintf(stripeGradient, c.Angle, stripe, stripe, stripe),
		BackgroundSize:  c.Size + " " + c.Size,
	}
}

func (c Config) className(key string) string {
	return c.Prefix + "-" + key
}
