package domain

// Absent marks a slot that is not part of the parameter vector.
const Absent = -1

// Slot names as reported by NameParams.
const (
	NameCBF         = "cbf"
	NameTransitMean = "transitm"
	NameDispersion  = "lambda"
	NameDelay       = "delay"
	NameSig0        = "sig0"
	NameArtMag      = "abv"
	NameArtDelay    = "artdelay"
	NameRetention   = "ret"
)

// Layout maps each named quantity to its 0-based position in the flat
// parameter vector. It is built once per configuration by NewLayout and is
// the only place offsets are computed.
type Layout struct {
	CBF         int
	TransitMean int
	Dispersion  int
	Delay       int
	Sig0        int
	ArtMag      int
	ArtDelay    int
	Retention   int

	names []string
	ard   []int
}

func NewLayout(t Toggles) Layout {
	l := Layout{
		TransitMean: Absent,
		Dispersion:  Absent,
		Delay:       Absent,
		ArtMag:      Absent,
		ArtDelay:    Absent,
		Retention:   Absent,
	}

	l.CBF = l.add(NameCBF)
	if t.InferMTT {
		l.TransitMean = l.add(NameTransitMean)
	}
	if t.InferLambda {
		l.Dispersion = l.add(NameDispersion)
	}
	if t.InferDelay {
		l.Delay = l.add(NameDelay)
	}
	l.Sig0 = l.add(NameSig0)
	if t.InferArt {
		l.ArtMag = l.add(NameArtMag)
		l.ArtDelay = l.add(NameArtDelay)
		l.ard = append(l.ard, l.ArtMag)
	}
	if t.InferRet {
		l.Retention = l.add(NameRetention)
	}

	return l
}

func (l *Layout) add(name string) int {
	l.names = append(l.names, name)
	return len(l.names) - 1
}

func (l Layout) Count() int {
	return len(l.names)
}

// Names returns the slot names in vector order.
func (l Layout) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

func (l Layout) Has(slot int) bool {
	return slot != Absent
}

// ARDIndices returns the slots subject to automatic relevance determination.
func (l Layout) ARDIndices() []int {
	out := make([]int, len(l.ard))
	copy(out, l.ard)
	return out
}

// Index returns the position of the named slot, or Absent.
func (l Layout) Index(name string) int {
	for i, n := range l.names {
		if n == name {
			return i
		}
	}
	return Absent
}
