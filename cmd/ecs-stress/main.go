// ecs-stress runs a synthetic workload against the signature ECS runtime and
// prints a timing/memory report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/plus3/sigecs/ecs"
)

// Profile describes one stress workload. Flags override the YAML file.
type Profile struct {
	Duration            time.Duration `yaml:"duration"`
	Entities            int           `yaml:"entities"`
	ComponentKinds      int           `yaml:"component_kinds"`
	ComponentsPerEntity int           `yaml:"components_per_entity"`
	ChurnPerFrame       int           `yaml:"churn_per_frame"`
	SignalsPerFrame     int           `yaml:"signals_per_frame"`
	Seed                int64         `yaml:"seed"`
}

func defaultProfile() Profile {
	return Profile{
		Duration:            10 * time.Second,
		Entities:            10000,
		ComponentKinds:      12,
		ComponentsPerEntity: 5,
		ChurnPerFrame:       50,
		SignalsPerFrame:     100,
		Seed:                1,
	}
}

func loadProfile(path string) (Profile, error) {
	p := defaultProfile()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, err
	}
	return p, nil
}

func main() {
	profilePath := flag.String("profile", "", "path to a YAML workload profile")
	duration := flag.Duration("duration", 0, "override: total duration the test should run for")
	entityCount := flag.Int("entities", 0, "override: initial number of entities")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "enable detailed GC pause metrics in the report")
	flag.Parse()

	profile, err := loadProfile(*profilePath)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}
	if *duration > 0 {
		profile.Duration = *duration
	}
	if *entityCount > 0 {
		profile.Entities = *entityCount
	}

	log.Println("Starting ECS stress test...")

	// 1. Setup kinds, scene, and systems
	rng := rand.New(rand.NewSource(profile.Seed))
	kinds := newStressKinds(profile.ComponentKinds)
	scene := ecs.NewScene()

	sink := newSinkSystem(scene, kinds)
	scene.AddSystems(
		newMutateSystem(scene, kinds, rng),
		newChurnSystem(scene, kinds, rng, profile.ChurnPerFrame, profile.ComponentsPerEntity),
		newPulseSystem(scene, kinds, profile.SignalsPerFrame),
		sink,
	)

	// 2. Populate the scene with the initial entities
	log.Printf("Populating scene with %d entities...\n", profile.Entities)
	for i := 0; i < profile.Entities; i++ {
		spawnRandomEntity(scene, kinds, rng, rng.Intn(profile.ComponentsPerEntity)+1)
	}
	scene.Update()
	log.Println("Population complete.")

	// 3. Run the frame loop
	report := &Report{
		Duration:       profile.Duration,
		Entities:       profile.Entities,
		ComponentKinds: kinds.registry.ComponentCount(),
		Systems:        len(scene.Systems()),
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", profile.Duration)
	ctx, cancel := context.WithTimeout(context.Background(), profile.Duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scene.Update()
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.SignalsHandled = sink.received
	report.FinalEntities = scene.Entities().Len()
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate the report
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
