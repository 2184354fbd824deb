// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package transport supplies the external collaborator spec §1 and §5
// place out of the core's scope: TCP delivery of SigmaMessage frames
// between participants. Grounded on original_source/src/network (sender.rs,
// receiver.rs, retransmitter.rs), translating its tokio/async-channel
// design into goroutines and Go channels.
package transport

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseAddresses reads a newline-separated host:port list from path.
// Position in the file is the participant id (spec §6's "participant
// address list"), grounded on original_source/src/config/config.rs's
// parse_ip_file/read_lines.
func ParseAddresses(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("transport: open address file: %w", err)
	}
	defer f.Close()

	var addresses []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("transport: read address file: %w", err)
	}
	return addresses, nil
}
