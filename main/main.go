package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/inlinestr"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	words := []string{"azerty", "hello", "world", "random", "aλb", "абвгд"}
	for i := 0; i < 10000; i++ {
		line := inlinestr.NewFixed(64, "")
		for _, w := range words {
			line.Push(w)
			line.PushRune(' ')
		}
		key := inlinestr.NewTiny(16, words[i%len(words)])
		key.UpperASCII()
		id := inlinestr.FormatZero(32, "req-%04d-%s", i, key.UnsafeString())
		if id.IsEmpty() {
			log.Fatal("empty id")
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
