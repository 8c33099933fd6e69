// Command dsa-align turns paired-end FASTQ reads into per-UMI-group
// consensus alignments against one or more reference templates and prints
// a tab-separated report of settings, parse statistics, alignments,
// per-template substitution frequencies, and unique sequence tallies.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/grailbio/base/grail"

	"github.com/broadinstitute/dsa/align"
	"github.com/broadinstitute/dsa/config"
	"github.com/broadinstitute/dsa/dsalog"
	"github.com/broadinstitute/dsa/pipeline"
	"github.com/broadinstitute/dsa/polymer"
	"github.com/broadinstitute/dsa/report"
	"github.com/broadinstitute/dsa/symbol"
	"github.com/broadinstitute/dsa/templatedb"
	"github.com/broadinstitute/dsa/umiref"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s -fw <fastq> -rv <fastq> -fw-ref <pattern> -rv-ref <pattern> [OPTIONS]\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	raw := config.RegisterFlags(flag.CommandLine)
	shutdown := grail.Init()
	defer shutdown()

	params, err := raw.Resolve()
	if err != nil {
		dsalog.Fatalf("%v", err)
	}

	started := time.Now()

	fwExs, err := buildExtractors(params.FwRefs)
	if err != nil {
		dsalog.Fatalf("%v", err)
	}
	rvExs, err := buildExtractors(params.RvRefs)
	if err != nil {
		dsalog.Fatalf("%v", err)
	}

	dbs, err := buildTemplateDatabases(&params)
	if err != nil {
		dsalog.Fatalf("%v", err)
	}

	var plog pipeline.ParseLog

	dsalog.Stage("extract")
	fwMap, err := pipeline.OpenFastq(params.FwFilename)
	if err != nil {
		dsalog.Fatalf("%v", err)
	}
	defer fwMap.Unmap()
	rvMap, err := pipeline.OpenFastq(params.RvFilename)
	if err != nil {
		dsalog.Fatalf("%v", err)
	}
	defer rvMap.Unmap()

	fwReads := pipeline.ExtractReadData(fwMap)
	rvReads := pipeline.ExtractReadData(rvMap)
	totalReads := len(fwReads)
	dsalog.StageDone("extract", totalReads)

	dsalog.Stage("qc")
	pairs := pipeline.QCReads(fwReads, rvReads, fwExs, rvExs, &params, &plog)
	dsalog.StageDone("qc", len(pairs))

	raggedEnds := params.SkipAssembly

	var reads []align.Read
	if params.SkipAssembly {
		reads = make([]align.Read, len(pairs))
		for i, p := range pairs {
			reads[i] = p.Fw
		}
	} else {
		dsalog.Stage("assemble")
		reads = pipeline.AssembleReads(pairs, &params, &plog)
		dsalog.StageDone("assemble", len(reads))
	}

	dsalog.Stage("umi-collapse")
	reads = pipeline.UmiCollapse(reads, &params, &plog, raggedEnds)
	dsalog.StageDone("umi-collapse", len(reads))

	dsalog.Stage("translate")
	orfs := pipeline.TranslateAndFilterPTCs(reads, &plog, false)
	dsalog.StageDone("translate", len(orfs))

	dsalog.Stage("split")
	splits, err := pipeline.SplitOrfs(orfs, &params, &plog)
	if err != nil {
		dsalog.Fatalf("%v", err)
	}
	dsalog.StageDone("split", len(splits))

	dsalog.Stage("align")
	alignments := pipeline.AlignToMultipleTemplates(splits, dbs, &params, &plog, raggedEnds)
	dsalog.StageDone("align", len(alignments))

	out := bufio.NewWriter(os.Stdout)
	run := &report.Run{
		Params:       &params,
		FwExtractors: fwExs,
		RvExtractors: rvExs,
		TotalReads:   totalReads,
		Log:          &plog,
		Elapsed:      time.Since(started),
		Completed:    time.Now(),
		Alignments:   alignments,
	}
	if err := report.Write(out, run); err != nil {
		dsalog.Fatalf("writing report: %v", err)
	}
	if err := out.Flush(); err != nil {
		dsalog.Fatalf("flushing report: %v", err)
	}
}

// buildExtractors compiles one UMIExtractor per reference sequence, in
// the order they'll be tried against a read.
func buildExtractors(refs []string) ([]*umiref.UMIExtractor, error) {
	out := make([]*umiref.UMIExtractor, 0, len(refs))
	for _, ref := range refs {
		ex, err := umiref.NewUMIExtractor(ref)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, nil
}

// buildTemplateDatabases constructs one template database per configured
// split region, trimmed per params.Trims where a trim pair is given for
// that region. A region backed by neither a fasta path nor an inline
// sequence yields a nil entry, leaving that region's ORFs unaligned.
func buildTemplateDatabases(params *config.Params) ([]*templatedb.DB, error) {
	dbs := make([]*templatedb.DB, len(params.TemplateSources))
	for i, src := range params.TemplateSources {
		db, err := buildOneDatabase(src)
		if err != nil {
			return nil, err
		}
		if db != nil && i < len(params.Trims) {
			trim := params.Trims[i]
			if err := db.Trim(trim.Left, trim.Right); err != nil {
				return nil, err
			}
		}
		dbs[i] = db
	}
	return dbs, nil
}

func buildOneDatabase(src config.TemplateSource) (*templatedb.DB, error) {
	switch {
	case src.FastaPath != "":
		return templatedb.FromIMGTFasta(src.FastaPath)
	case src.Dna.Len() > 0:
		db := templatedb.New()
		cdns := polymer.ToCdns(&src.Dna)
		db.AddEntry("", cdns, polymer.ToAas(&cdns, symbol.StandardTranslationTable))
		return db, nil
	case src.Aas.Len() > 0:
		db := templatedb.New()
		db.AddEntry("", polymer.Cdns{}, src.Aas)
		return db, nil
	default:
		return nil, nil
	}
}
