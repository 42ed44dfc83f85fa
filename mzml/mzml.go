// Package mzml reads spectra from mzML 1.1 files.
//
// Only the parts needed to feed detection are parsed: the spectrum list with
// its binary-encoded m/z and intensity arrays. Metadata sections, precursor
// information and chromatograms are skipped.
package mzml

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/binary"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-masspec/ms"
)

// Controlled-vocabulary accessions used while decoding spectra.
const (
	cvMzArray        = "MS:1000514"
	cvIntensityArray = "MS:1000515"
	cvFloat32        = "MS:1000521"
	cvFloat64        = "MS:1000523"
	cvZlib           = "MS:1000574"
	cvMSLevel        = "MS:1000511"
)

var (
	// ErrNoSpectra is returned when the document contains no spectrum list.
	ErrNoSpectra = errors.New("mzml: no spectra found")
	// ErrMissingArray is returned when a spectrum lacks its m/z or
	// intensity binary array.
	ErrMissingArray = errors.New("mzml: missing m/z or intensity array")
	// ErrPrecision is returned when a binary array declares no known
	// float precision.
	ErrPrecision = errors.New("mzml: unknown binary array precision")
)

// Spectrum is one decoded spectrum.
type Spectrum struct {
	ID      string
	Index   int
	MSLevel int
	Scan    ms.Scan
}

// document tolerates both a plain <mzML> root and the <indexedmzML> wrapper
// by leaving the root element unpinned.
type document struct {
	XMLName xml.Name
	Run     run      `xml:"run"`
	Inner   *wrapped `xml:"mzML"`
}

type wrapped struct {
	Run run `xml:"run"`
}

type run struct {
	SpectrumList spectrumList `xml:"spectrumList"`
}

type spectrumList struct {
	Count    int           `xml:"count,attr"`
	Spectrum []xmlSpectrum `xml:"spectrum"`
}

type xmlSpectrum struct {
	Index               int                 `xml:"index,attr"`
	ID                  string              `xml:"id,attr"`
	DefaultArrayLength  int                 `xml:"defaultArrayLength,attr"`
	CvPar               []cvParam           `xml:"cvParam"`
	BinaryDataArrayList binaryDataArrayList `xml:"binaryDataArrayList"`
}

type binaryDataArrayList struct {
	Count           int               `xml:"count,attr"`
	BinaryDataArray []binaryDataArray `xml:"binaryDataArray"`
}

type binaryDataArray struct {
	EncodedLength int       `xml:"encodedLength,attr"`
	CvPar         []cvParam `xml:"cvParam"`
	Binary        string    `xml:"binary"`
}

type cvParam struct {
	Accession string `xml:"accession,attr"`
	Name      string `xml:"name,attr"`
	Value     string `xml:"value,attr"`
}

// ReadFile reads all spectra from an mzML file on disk.
func ReadFile(path string) ([]Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mzml: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read reads all spectra from an mzML document.
func Read(r io.Reader) ([]Spectrum, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mzml: %w", err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mzml: parse: %w", err)
	}

	spectra := doc.Run.SpectrumList.Spectrum
	if doc.Inner != nil && len(spectra) == 0 {
		spectra = doc.Inner.Run.SpectrumList.Spectrum
	}
	if len(spectra) == 0 {
		return nil, ErrNoSpectra
	}

	out := make([]Spectrum, 0, len(spectra))
	for _, xs := range spectra {
		sp, err := decodeSpectrum(xs)
		if err != nil {
			return nil, fmt.Errorf("mzml: spectrum %q: %w", xs.ID, err)
		}
		out = append(out, sp)
	}

	return out, nil
}

func decodeSpectrum(xs xmlSpectrum) (Spectrum, error) {
	sp := Spectrum{
		ID:      xs.ID,
		Index:   xs.Index,
		MSLevel: 1,
	}

	for _, cv := range xs.CvPar {
		if cv.Accession == cvMSLevel && cv.Value != "" {
			level, err := strconv.Atoi(cv.Value)
			if err != nil {
				return sp, fmt.Errorf("bad ms level %q: %w", cv.Value, err)
			}
			sp.MSLevel = level
		}
	}

	var mzs, intensities []float64
	for _, arr := range xs.BinaryDataArrayList.BinaryDataArray {
		values, kind, err := decodeArray(arr)
		if err != nil {
			return sp, err
		}

		switch kind {
		case cvMzArray:
			mzs = values
		case cvIntensityArray:
			intensities = values
		}
	}

	if mzs == nil || intensities == nil {
		return sp, ErrMissingArray
	}

	scan, err := ms.FromArrays(mzs, intensities)
	if err != nil {
		return sp, err
	}

	sp.Scan = scan
	return sp, nil
}

// decodeArray decodes one binaryDataArray and reports which array kind
// (m/z or intensity accession) it carries. Arrays of other kinds return an
// empty kind and are skipped by the caller.
func decodeArray(arr binaryDataArray) ([]float64, string, error) {
	var (
		kind       string
		compressed bool
		is64       bool
		is32       bool
	)

	for _, cv := range arr.CvPar {
		switch cv.Accession {
		case cvMzArray, cvIntensityArray:
			kind = cv.Accession
		case cvZlib:
			compressed = true
		case cvFloat64:
			is64 = true
		case cvFloat32:
			is32 = true
		}
	}

	if kind == "" {
		return nil, "", nil
	}
	if !is64 && !is32 {
		return nil, "", ErrPrecision
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(arr.Binary))
	if err != nil {
		return nil, "", fmt.Errorf("base64: %w", err)
	}

	if compressed {
		zr, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, "", fmt.Errorf("zlib: %w", err)
		}

		raw, err = io.ReadAll(zr)
		zr.Close()
		if err != nil {
			return nil, "", fmt.Errorf("zlib: %w", err)
		}
	}

	if is64 {
		if len(raw)%8 != 0 {
			return nil, "", fmt.Errorf("64-bit array has %d bytes", len(raw))
		}

		values := make([]float64, len(raw)/8)
		for i := range values {
			bits := binary.LittleEndian.Uint64(raw[i*8:])
			values[i] = math.Float64frombits(bits)
		}
		return values, kind, nil
	}

	if len(raw)%4 != 0 {
		return nil, "", fmt.Errorf("32-bit array has %d bytes", len(raw))
	}

	values := make([]float64, len(raw)/4)
	for i := range values {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		values[i] = float64(math.Float32frombits(bits))
	}
	return values, kind, nil
}
