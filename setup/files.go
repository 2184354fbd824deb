// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package setup

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DimitrisPapac/GRandLine/crypto/pvss"
	"github.com/DimitrisPapac/GRandLine/curve"
)

// FileNames returns the four artifact paths for an (n, t) run inside dir,
// named "<n>_<t>cfg/pks/sks/cms" after original_source/src/config/config.rs's
// generate_setup_files naming convention.
func FileNames(dir string, n, t int) (cfg, pks, sks, cms string) {
	base := fmt.Sprintf("%d_%d", n, t)
	return filepath.Join(dir, base+"cfg"),
		filepath.Join(dir, base+"pks"),
		filepath.Join(dir, base+"sks"),
		filepath.Join(dir, base+"cms")
}

// WriteArtifacts persists art's four files under dir, creating dir if
// necessary.
func WriteArtifacts(e curve.Engine, dir string, art *Artifacts) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("setup: create %s: %w", dir, err)
	}
	cfgPath, pksPath, sksPath, cmsPath := FileNames(dir, art.Config.N, art.Config.T)

	if err := writeFile(cfgPath, encodeConfig(e, art.Config)); err != nil {
		return err
	}
	if err := writeFile(pksPath, encodePublicKeys(e, art.PublicKeys)); err != nil {
		return err
	}
	if err := writeFile(sksPath, encodeShares(e, art.Shares)); err != nil {
		return err
	}
	if err := writeFile(cmsPath, encodeCommitments(e, art.Commitments)); err != nil {
		return err
	}
	return nil
}

// ReadArtifacts loads the four files for an (n, t) run from dir.
func ReadArtifacts(e curve.Engine, curveName curve.Name, dir string, n, t int) (*Artifacts, error) {
	cfgPath, pksPath, sksPath, cmsPath := FileNames(dir, n, t)

	cfgBytes, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("setup: read config: %w", err)
	}
	config, err := decodeConfig(e, curveName, cfgBytes)
	if err != nil {
		return nil, fmt.Errorf("setup: decode config: %w", err)
	}

	pksBytes, err := os.ReadFile(pksPath)
	if err != nil {
		return nil, fmt.Errorf("setup: read pks: %w", err)
	}
	pks, err := decodePublicKeys(e, pksBytes)
	if err != nil {
		return nil, fmt.Errorf("setup: decode pks: %w", err)
	}

	sksBytes, err := os.ReadFile(sksPath)
	if err != nil {
		return nil, fmt.Errorf("setup: read sks: %w", err)
	}
	shares, err := decodeShares(e, sksBytes)
	if err != nil {
		return nil, fmt.Errorf("setup: decode sks: %w", err)
	}

	cmsBytes, err := os.ReadFile(cmsPath)
	if err != nil {
		return nil, fmt.Errorf("setup: read commitments: %w", err)
	}
	commitments, err := decodeCommitments(e, cmsBytes)
	if err != nil {
		return nil, fmt.Errorf("setup: decode commitments: %w", err)
	}

	return &Artifacts{
		Config:      config,
		PublicKeys:  pks,
		Shares:      shares,
		Commitments: commitments,
	}, nil
}

func writeFile(path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("setup: write %s: %w", path, err)
	}
	return nil
}

// encodeConfig lays out: curve name (u32 LE length + bytes), T (u64 LE),
// N (u64 LE), g1 (G1 bytes), g2 (G2 bytes).
func encodeConfig(e curve.Engine, c *pvss.Config) []byte {
	name := []byte(c.Curve)
	g1 := e.SerializeG1(c.SRS.G1)
	g2 := e.SerializeG2(c.SRS.G2)

	buf := make([]byte, 0, 4+len(name)+8+8+len(g1)+len(g2))
	buf = appendUint32(buf, uint32(len(name)))
	buf = append(buf, name...)
	buf = appendUint64(buf, uint64(c.T))
	buf = appendUint64(buf, uint64(c.N))
	buf = append(buf, g1...)
	buf = append(buf, g2...)
	return buf
}

func decodeConfig(e curve.Engine, curveName curve.Name, b []byte) (*pvss.Config, error) {
	off := 0
	if len(b) < 4 {
		return nil, fmt.Errorf("setup: config file truncated")
	}
	nameLen := int(binary.LittleEndian.Uint32(b[off:]))
	off += 4
	if len(b) < off+nameLen+16 {
		return nil, fmt.Errorf("setup: config file truncated")
	}
	off += nameLen // curve name is recorded for diagnostics; caller supplies the engine to use
	t := int(binary.LittleEndian.Uint64(b[off:]))
	off += 8
	n := int(binary.LittleEndian.Uint64(b[off:]))
	off += 8

	g1Size := len(e.SerializeG1(curve.G1{}))
	g2Size := len(e.SerializeG2(curve.G2{}))
	if len(b) != off+g1Size+g2Size {
		return nil, fmt.Errorf("setup: config file has wrong length")
	}
	g1, err := e.DeserializeG1(b[off:off+g1Size])
	if err != nil {
		return nil, err
	}
	off += g1Size
	g2, err := e.DeserializeG2(b[off : off+g2Size])
	if err != nil {
		return nil, err
	}

	return pvss.NewConfig(curveName, pvss.SRS{G1: g1, G2: g2}, t, n)
}

func encodePublicKeys(e curve.Engine, pks []curve.G2) []byte {
	buf := appendUint32(nil, uint32(len(pks)))
	for _, pk := range pks {
		buf = append(buf, e.SerializeG2(pk)...)
	}
	return buf
}

func decodePublicKeys(e curve.Engine, b []byte) ([]curve.G2, error) {
	count, rest, err := readCount(b)
	if err != nil {
		return nil, err
	}
	size := len(e.SerializeG2(curve.G2{}))
	if len(rest) != count*size {
		return nil, fmt.Errorf("setup: pks file has wrong length")
	}
	out := make([]curve.G2, count)
	for i := 0; i < count; i++ {
		pk, err := e.DeserializeG2(rest[i*size : (i+1)*size])
		if err != nil {
			return nil, fmt.Errorf("setup: decode pk %d: %w", i, err)
		}
		out[i] = pk
	}
	return out, nil
}

func encodeShares(e curve.Engine, shares []PrivateShare) []byte {
	buf := appendUint32(nil, uint32(len(shares)))
	for _, s := range shares {
		buf = append(buf, e.SerializeG1(s.Share)...)
		buf = append(buf, e.SerializeScalar(s.Witness)...)
	}
	return buf
}

func decodeShares(e curve.Engine, b []byte) ([]PrivateShare, error) {
	count, rest, err := readCount(b)
	if err != nil {
		return nil, err
	}
	g1Size := len(e.SerializeG1(curve.G1{}))
	scalarSize, err := sampleScalarSize(e)
	if err != nil {
		return nil, err
	}
	recSize := g1Size + scalarSize
	if len(rest) != count*recSize {
		return nil, fmt.Errorf("setup: sks file has wrong length")
	}
	out := make([]PrivateShare, count)
	for i := 0; i < count; i++ {
		rec := rest[i*recSize : (i+1)*recSize]
		share, err := e.DeserializeG1(rec[:g1Size])
		if err != nil {
			return nil, fmt.Errorf("setup: decode share %d: %w", i, err)
		}
		witness, err := e.DeserializeScalar(rec[g1Size:])
		if err != nil {
			return nil, fmt.Errorf("setup: decode witness %d: %w", i, err)
		}
		out[i] = PrivateShare{Share: share, Witness: witness}
	}
	return out, nil
}

func encodeCommitments(e curve.Engine, commitments []pvss.Commitment) []byte {
	buf := appendUint32(nil, uint32(len(commitments)))
	for _, c := range commitments {
		buf = appendUint64(buf, uint64(c.ID))
		buf = append(buf, e.SerializeG2(c.Part1)...)
		buf = append(buf, e.SerializeG1(c.Part2)...)
	}
	return buf
}

func decodeCommitments(e curve.Engine, b []byte) ([]pvss.Commitment, error) {
	count, rest, err := readCount(b)
	if err != nil {
		return nil, err
	}
	g2Size := len(e.SerializeG2(curve.G2{}))
	g1Size := len(e.SerializeG1(curve.G1{}))
	recSize := 8 + g2Size + g1Size
	if len(rest) != count*recSize {
		return nil, fmt.Errorf("setup: commitments file has wrong length")
	}
	out := make([]pvss.Commitment, count)
	for i := 0; i < count; i++ {
		rec := rest[i*recSize : (i+1)*recSize]
		id := int(binary.LittleEndian.Uint64(rec[:8]))
		part1, err := e.DeserializeG2(rec[8 : 8+g2Size])
		if err != nil {
			return nil, fmt.Errorf("setup: decode commitment %d part1: %w", i, err)
		}
		part2, err := e.DeserializeG1(rec[8+g2Size:])
		if err != nil {
			return nil, fmt.Errorf("setup: decode commitment %d part2: %w", i, err)
		}
		out[i] = pvss.Commitment{ID: id, Part1: part1, Part2: part2}
	}
	return out, nil
}

func readCount(b []byte) (int, []byte, error) {
	if len(b) < 4 {
		return 0, nil, fmt.Errorf("setup: file truncated (missing count)")
	}
	count := int(binary.LittleEndian.Uint32(b[:4]))
	return count, b[4:], nil
}

func appendUint32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendUint64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

func sampleScalarSize(e curve.Engine) (int, error) {
	s, err := e.RandomScalar()
	if err != nil {
		return 0, fmt.Errorf("setup: sample scalar to size codec: %w", err)
	}
	return len(e.SerializeScalar(s)), nil
}
