// Command tigerkdf-bench measures TigerKDF throughput at a given set of
// cost parameters and reports total and per-hash time.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/waywardgeek/twocats/pkg/tigerkdf"
	"github.com/waywardgeek/twocats/pkg/tkdflog"
)

func main() {
	hashSize := flag.Int("hashsize", 32, "output hash size in bytes")
	blockSize := flag.Int("blocksize", 8192, "outer block size in bytes")
	subBlockSize := flag.Int("subblocksize", 256, "inner addressing granularity in bytes")
	parallelism := flag.Int("parallelism", runtime.NumCPU(), "number of worker goroutines")
	startGarlic := flag.Int("start", 0, "first garlic level")
	stopGarlic := flag.Int("stop", 16, "last garlic level")
	timeCost := flag.Int("timecost", 0, "ALU time-cost knob")
	repeat := flag.Int("repeat", 1, "number of hashes to run and average over")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		tkdflog.SetLevel(logrus.DebugLevel)
	}

	runtime.GOMAXPROCS(runtime.NumCPU())

	p := tigerkdf.Params{
		HashSize:     *hashSize,
		BlockSize:    *blockSize,
		SubBlockSize: *subBlockSize,
		Parallelism:  *parallelism,
		StartMemCost: *startGarlic,
		StopMemCost:  *stopGarlic,
		TimeCost:     *timeCost,
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		log.Fatalf("tigerkdf-bench: failed to generate salt: %v", err)
	}
	password := []byte("benchmark password")

	started := time.Now()
	var lastHash []byte
	for i := 0; i < *repeat; i++ {
		hash, err := tigerkdf.HashPassword(p, password, salt, nil)
		if err != nil {
			log.Fatalf("tigerkdf-bench: HashPassword failed: %v", err)
		}
		lastHash = hash
	}
	elapsed := time.Since(started)

	perHash := elapsed / time.Duration(*repeat)
	fmt.Fprintf(os.Stdout, "parallelism=%d startGarlic=%d stopGarlic=%d blockSize=%d subBlockSize=%d timeCost=%d\n",
		*parallelism, *startGarlic, *stopGarlic, *blockSize, *subBlockSize, *timeCost)
	fmt.Fprintf(os.Stdout, "%d run(s): %v total, %v/hash\n", *repeat, elapsed, perHash)
	fmt.Fprintf(os.Stdout, "last hash: %x\n", lastHash)
}
