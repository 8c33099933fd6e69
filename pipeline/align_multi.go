package pipeline

import (
	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
	"github.com/broadinstitute/dsa/parallelrun"
	"github.com/broadinstitute/dsa/templatedb"
)

// AlignToMultipleTemplates aligns each split ORF group against the
// per-region template databases in dbs (orfs[g][i] is aligned against
// dbs[i]; a nil entry in dbs means region i is passed through
// unaligned), interning one AlignmentTemplate per distinct combination of
// per-region template ids actually observed among surviving groups.
//
// A group is dropped entirely if any of its regions fails to find a
// matching template (filter_no_matching_template) or scores below
// params.MinAlignmentScore relative to that template's self-alignment
// score (filter_bad_alignment) -- mirroring the reference's early
// break out of the per-region loop.
func AlignToMultipleTemplates(orfs [][]align.Orf, dbs []*templatedb.DB, params *config.Params, log *ParseLog, raggedEnds bool) []GroupAlignment {
	if len(orfs) == 0 {
		return nil
	}

	type workerOutput struct {
		alignment   GroupAlignment
		templateIDs []int
		ok          bool
		// noTemplate and badAlignment record why a group was dropped; the
		// counters are added to log after the workers finish.
		noTemplate   bool
		badAlignment bool
	}

	outcomes := parallelrun.Transform(orfs, parallelrun.Workers(), func(group []align.Orf) workerOutput {
		var out workerOutput
		out.templateIDs = make([]int, 0, len(group))

		for i, orf := range group {
			db := dbs[i]

			if db == nil {
				out.templateIDs = append(out.templateIDs, 0)
				out.alignment.Alignment += orf.Aas.String()
				out.alignment.Cdns += orf.Cdns.String()
				continue
			}

			var (
				templateID int
				aln        align.Alignment
			)
			if db.CodonDataAvailable() {
				templateID, aln = db.QueryAndAlign(&orf.Cdns)
			} else {
				templateID, aln = db.QueryAndAlignAas(&orf.Aas)
			}

			if templateID == templatedb.NotFound {
				// Query only returns NotFound for an empty database, which
				// drops the group without counting a template mismatch.
				return workerOutput{noTemplate: db.Len() > 0}
			}

			entry := db.At(templateID)

			var maxScore float64
			if db.CodonDataAvailable() {
				maxScore = float64(align.SelfAlignScore(&entry.Cdns, align.CdnScore))
			} else {
				maxScore = float64(align.SelfAlignScore(&entry.Aas, align.AaScore))
			}
			if raggedEnds {
				diff := orf.Aas.Len() - entry.Aas.Len()
				if diff < 0 {
					diff = -diff
				}
				maxScore -= float64(db.GapPenalty()) * float64(diff)
			}

			if float64(aln.Score)/maxScore < float64(params.MinAlignmentScore) {
				return workerOutput{badAlignment: true}
			}

			out.templateIDs = append(out.templateIDs, templateID)
			out.alignment.Alignment += align.BuildString(&orf.Aas, &aln.Traceback)
			out.alignment.Cdns += align.BuildString(&orf.Cdns, &aln.Traceback)
		}

		out.alignment.UmiGroupSize = group[0].UmiGroupSize
		out.alignment.Barcode = group[0].Barcode
		out.ok = true
		return out
	})

	type templateKey = string
	templateLookup := map[templateKey]*AlignmentTemplate{}
	nextID := 0

	alignments := make([]GroupAlignment, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.ok {
			if o.noTemplate {
				log.FilterNoMatchingTemplate++
			}
			if o.badAlignment {
				log.FilterBadAlignment++
			}
			continue
		}

		key := templateIDKey(o.templateIDs)
		tpl, found := templateLookup[key]
		if !found {
			nextID++
			tpl = &AlignmentTemplate{ID: nextID}
			for i, id := range o.templateIDs {
				db := dbs[i]
				if db == nil {
					tpl.Labels = append(tpl.Labels, "none")
					continue
				}
				entry := db.At(id)
				tpl.Labels = append(tpl.Labels, entry.Label)
				tpl.Aas.Concat(&entry.Aas)
				tpl.Cdns.Concat(&entry.Cdns)
			}
			templateLookup[key] = tpl
		}

		o.alignment.Templ = tpl
		alignments = append(alignments, o.alignment)
	}

	return alignments
}

// templateIDKey renders a per-region template id vector into a comparable
// map key, standing in for the reference's vector<size_t> hash.
func templateIDKey(ids []int) string {
	buf := make([]byte, 0, len(ids)*8)
	for _, id := range ids {
		buf = append(buf,
			byte(id), byte(id>>8), byte(id>>16), byte(id>>24),
			byte(id>>32), byte(id>>40), byte(id>>48), byte(id>>56),
			0,
		)
	}
	return string(buf)
}
