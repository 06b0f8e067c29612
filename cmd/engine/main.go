// The engine binary speaks the session layer's line protocol: one JSON
// request per stdin line, one JSON response per stdout line. It keeps no
// state between lines; the caller owns the authoritative position.
package main

import (
	"bufio"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/matchboard/gamelogic/internal/protocol"
	"github.com/matchboard/gamelogic/internal/service"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	engineService := service.NewEngineService()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var resp any
		var req protocol.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			resp = protocol.ErrorResponse{Error: "malformed request: " + err.Error()}
		} else {
			resp = engineService.Dispatch(req)
		}

		if err := enc.Encode(resp); err != nil {
			log.Fatalf("write response: %v", err)
		}
		if err := out.Flush(); err != nil {
			log.Fatalf("flush response: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read request: %v", err)
	}
}
