// Package designer generates diverse candidate molecules with
// drug-likeness scoring. Candidates are descriptive records only; they
// are not simulatable molecules and carry no coordinates.
package designer

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
)

// Structure summarizes a candidate's gross topology.
type Structure struct {
	Rings            int
	AromaticRings    int
	Heteroatoms      int
	FunctionalGroups []string
}

// Candidate is one generated molecule proposal. All score fields are in
// [0,1].
type Candidate struct {
	ID              string
	Name            string
	SMILES          string
	Formula         string
	MolecularWeight float64
	LogP            float64
	HBD             int
	HBA             int
	TPSA            float64
	DrugLikeness    float64
	SynthesisScore  float64
	Novelty         float64
	TargetAffinity  float64
	ADMETScore      float64
	Mechanism       string
	Advantages      []string
	Concerns        []string
	Structure       Structure
}

type template struct {
	kind       string
	base       string
	variations []string
}

var templates = []template{
	{"benzene_derivative", "C1=CC=CC=C1", []string{"substituted", "fused_rings", "heteroaromatic"}},
	{"heterocycle", "C1=CN=CC=C1", []string{"pyridine", "pyrimidine", "quinoline", "indole"}},
	{"aliphatic_chain", "CCCCCC", []string{"branched", "cyclic", "unsaturated"}},
	{"peptide_mimic", "NC(=O)C", []string{"beta_sheet", "alpha_helix", "turn_mimic"}},
	{"natural_product", "C1CC2CCC1C2", []string{"steroid", "terpene", "alkaloid", "flavonoid"}},
}

var smilesVariations = map[string]string{
	"substituted":    "C1=CC(C)=CC(O)=C1",
	"fused_rings":    "C1=CC=C2C=CC=CC2=C1",
	"heteroaromatic": "C1=CN=CC=C1",
	"pyridine":       "C1=CC=NC=C1",
	"pyrimidine":     "C1=CN=CN=C1",
	"quinoline":      "C1=CC=C2N=CC=CC2=C1",
	"indole":         "C1=CC=C2C(=C1)C=CN2",
	"branched":       "CC(C)CC(C)C",
	"cyclic":         "C1CCCCC1",
	"unsaturated":    "C=CC=CC=C",
	"beta_sheet":     "NC(=O)C(N)C(=O)N",
	"alpha_helix":    "NC(C)C(=O)NC(C)C(=O)N",
	"steroid":        "C1CC2CCC3C(CCC4CCCCC34)C2CC1",
	"terpene":        "CC(C)=CCCC(C)=C",
	"alkaloid":       "CN1CCC2=CC=CC=C2C1",
	"flavonoid":      "C1=CC(=CC=C1C2=CC(=O)C3=C(C=C(C=C3O2)O)O)O",
}

var functionalGroups = map[string][]string{
	"benzene_derivative": {"hydroxyl", "methyl", "amino", "carboxyl"},
	"heterocycle":        {"amino", "carbonyl", "hydroxyl", "methoxy"},
	"aliphatic_chain":    {"hydroxyl", "amino", "carboxyl", "ester"},
	"peptide_mimic":      {"amide", "amino", "carboxyl", "hydroxyl"},
	"natural_product":    {"hydroxyl", "methyl", "carbonyl", "ether"},
}

var mechanisms = []string{
	"competitive active-site inhibition",
	"positive allosteric modulation",
	"receptor antagonism",
	"reversible enzyme inhibition",
	"ion-channel blockade",
	"G-protein-coupled receptor activation",
	"protein synthesis inhibition",
	"gene expression modulation",
}

var namePrefixes = []string{"Neo", "Iso", "Meta", "Para", "Ortho", "Cyclo", "Tetra", "Penta"}
var nameSuffixes = []string{"ine", "ole", "ane", "ide", "ate", "yl", "one", "al"}

// Designer generates candidates with a seeded source so runs are
// reproducible.
type Designer struct {
	rng *rand.Rand
}

func New(seed int64) *Designer {
	return &Designer{rng: rand.New(rand.NewSource(seed))}
}

// DrugLikeness applies a Lipinski-flavored rule-of-five penalty: 0.2 off
// per violated weight/logP/HBD/HBA rule, 0.1 off for high TPSA, clamped
// to [0,1].
func DrugLikeness(mw, logP float64, hbd, hba int, tpsa float64) float64 {
	score := 1.0
	if mw > 500 {
		score -= 0.2
	}
	if logP > 5 {
		score -= 0.2
	}
	if hbd > 5 {
		score -= 0.2
	}
	if hba > 10 {
		score -= 0.2
	}
	if tpsa > 140 {
		score -= 0.1
	}
	return math.Max(0, math.Min(1, score))
}

// Generate produces count candidates sorted by drug-likeness,
// descending.
func (d *Designer) Generate(count int) []Candidate {
	out := make([]Candidate, 0, count)
	for i := 0; i < count; i++ {
		tmpl := templates[d.rng.Intn(len(templates))]
		variation := tmpl.variations[d.rng.Intn(len(tmpl.variations))]

		mw := 150 + d.rng.Float64()*400
		logP := -2 + d.rng.Float64()*8
		hbd := d.rng.Intn(6)
		hba := d.rng.Intn(10)
		tpsa := 20 + d.rng.Float64()*140

		likeness := DrugLikeness(mw, logP, hbd, hba, tpsa)
		rings := 1 + d.rng.Intn(4)

		c := Candidate{
			ID:              fmt.Sprintf("ai_mol_%d_%04d", i+1, 1000+d.rng.Intn(9000)),
			Name:            d.generateName(tmpl.kind, i+1),
			SMILES:          generateSMILES(tmpl, variation),
			Formula:         d.generateFormula(mw),
			MolecularWeight: math.Round(mw*100) / 100,
			LogP:            math.Round(logP*100) / 100,
			HBD:             hbd,
			HBA:             hba,
			TPSA:            math.Round(tpsa*100) / 100,
			DrugLikeness:    likeness,
			SynthesisScore:  0.3 + d.rng.Float64()*0.7,
			Novelty:         0.4 + d.rng.Float64()*0.6,
			TargetAffinity:  0.5 + d.rng.Float64()*0.5,
			ADMETScore:      0.4 + d.rng.Float64()*0.6,
			Mechanism:       mechanisms[d.rng.Intn(len(mechanisms))],
			Structure: Structure{
				Rings:            rings,
				AromaticRings:    d.rng.Intn(rings),
				Heteroatoms:      d.rng.Intn(8),
				FunctionalGroups: d.generateFunctionalGroups(tmpl.kind),
			},
		}
		c.Advantages = d.generateAdvantages(tmpl.kind, likeness, c.Novelty)
		c.Concerns = d.generateConcerns(c.LogP, c.MolecularWeight, c.TPSA)
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DrugLikeness > out[j].DrugLikeness
	})
	return out
}

func (d *Designer) generateName(kind string, index int) string {
	prefix := namePrefixes[d.rng.Intn(len(namePrefixes))]
	suffix := nameSuffixes[d.rng.Intn(len(nameSuffixes))]
	base := strings.SplitN(kind, "_", 2)[0]
	return fmt.Sprintf("%s%s%s-%d", prefix, base, suffix, index)
}

func generateSMILES(tmpl template, variation string) string {
	if s, ok := smilesVariations[variation]; ok {
		return s
	}
	return tmpl.base
}

func (d *Designer) generateFormula(mw float64) string {
	carbons := int(mw / 20)
	hydrogens := carbons * 3 / 2
	oxygens := d.rng.Intn(4)
	nitrogens := d.rng.Intn(3)

	formula := fmt.Sprintf("C%dH%d", carbons, hydrogens)
	if nitrogens > 0 {
		formula += fmt.Sprintf("N%d", nitrogens)
	}
	if oxygens > 0 {
		formula += fmt.Sprintf("O%d", oxygens)
	}
	return formula
}

func (d *Designer) generateFunctionalGroups(kind string) []string {
	groups, ok := functionalGroups[kind]
	if !ok {
		groups = functionalGroups["benzene_derivative"]
	}
	count := 1 + d.rng.Intn(3)
	if count > len(groups) {
		count = len(groups)
	}
	return d.sample(groups, count)
}

func (d *Designer) generateAdvantages(kind string, likeness, novelty float64) []string {
	var advantages []string
	if likeness > 0.8 {
		advantages = append(advantages, "excellent drug-likeness")
	}
	if novelty > 0.7 {
		advantages = append(advantages, "highly novel scaffold")
	}
	switch kind {
	case "natural_product":
		advantages = append(advantages, "natural-product derived")
	case "heterocycle":
		advantages = append(advantages, "good aqueous solubility")
	case "peptide_mimic":
		advantages = append(advantages, "high selectivity")
	}
	advantages = append(advantages, "optimization potential", "feasible synthesis")
	n := 3
	if n > len(advantages) {
		n = len(advantages)
	}
	return d.sample(advantages, n)
}

func (d *Designer) generateConcerns(logP, mw, tpsa float64) []string {
	var concerns []string
	if logP > 5 {
		concerns = append(concerns, "high lipophilicity")
	}
	if mw > 500 {
		concerns = append(concerns, "high molecular weight")
	}
	if tpsa > 140 {
		concerns = append(concerns, "high TPSA, likely poor permeability")
	}
	if logP < 0 {
		concerns = append(concerns, "low lipophilicity")
	}
	if len(concerns) == 0 {
		concerns = append(concerns, "needs experimental validation")
	}
	n := 2
	if n > len(concerns) {
		n = len(concerns)
	}
	return d.sample(concerns, n)
}

// sample returns n distinct elements in random order without mutating
// the input.
func (d *Designer) sample(items []string, n int) []string {
	idx := d.rng.Perm(len(items))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
