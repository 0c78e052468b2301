// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/satori/go.uuid"
	"github.com/urfave/cli"
)

// benchWork runs one function in several goroutines at once.
type benchWork struct {
	Concurrency int
}

func (bench *benchWork) Run(runner func()) {
	wg := sync.WaitGroup{}
	wg.Add(bench.Concurrency)
	for i := 0; i < bench.Concurrency; i++ {
		go func() {
			defer wg.Done()
			runner()
		}()
	}
	wg.Wait()
}

// benchResult is printed at the end of a benchmark.
type benchResult struct {
	Created int64   `yaml:"created"`
	Deleted int64   `yaml:"deleted"`
	Failed  int64   `yaml:"failed"`
	Seconds float64 `yaml:"seconds"`
}

func (a *admin) benchCommand() cli.Command {
	return cli.Command{
		Name:  "bench",
		Usage: "create and delete many workspaces to load the server",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "count",
				Value: 100,
				Usage: "number of workspaces to create",
			},
			cli.IntFlag{
				Name:  "concurrency",
				Value: runtime.NumCPU(),
				Usage: "run this many requests in parallel",
			},
		},
		Action: func(c *cli.Context) error {
			bench := benchWork{Concurrency: c.Int("concurrency")}
			if bench.Concurrency < 1 {
				bench.Concurrency = 1
			}
			count := c.Int("count")
			numbers := make(chan int)
			go func() {
				for i := 1; i <= count; i++ {
					numbers <- i
				}
				close(numbers)
			}()

			var result benchResult
			start := a.Clock.Now()
			bench.Run(func() {
				for range numbers {
					name := "bench-" + uuid.NewV4().String()
					if _, err := a.GeoServer.Workspaces.Create(a.ctx(), name); err != nil {
						a.Log.WithField("err", err).Debug("create failed")
						atomic.AddInt64(&result.Failed, 1)
						continue
					}
					atomic.AddInt64(&result.Created, 1)
					if err := a.GeoServer.Workspaces.Delete(a.ctx(), name, true); err != nil {
						a.Log.WithField("err", err).Debug("delete failed")
						atomic.AddInt64(&result.Failed, 1)
						continue
					}
					atomic.AddInt64(&result.Deleted, 1)
				}
			})
			result.Seconds = a.Clock.Now().Sub(start).Seconds()
			return a.print(result)
		},
	}
}
