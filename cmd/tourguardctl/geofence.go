package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"tourguard/internal/domain/entity"
	"tourguard/internal/domain/geofence"
	"tourguard/internal/infra/cache"
	"tourguard/internal/infra/persistence/postgres"
	"tourguard/internal/usecase"
	"tourguard/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var geofenceCmd = &cobra.Command{
	Use:   "geofence",
	Short: "Inspect geofences",
}

var geofenceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List geofences",
	RunE:  runGeofenceList,
}

var geofenceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show which geofences contain or surround a point",
	RunE:  runGeofenceCheck,
}

var (
	listAll     bool
	checkLat    float64
	checkLng    float64
	checkRadius float64
)

func init() {
	geofenceListCmd.Flags().BoolVar(&listAll, "all", false, "Include inactive geofences")

	geofenceCheckCmd.Flags().Float64Var(&checkLat, "lat", 0, "Latitude")
	geofenceCheckCmd.Flags().Float64Var(&checkLng, "lng", 0, "Longitude")
	geofenceCheckCmd.Flags().Float64Var(&checkRadius, "radius", 0, "Nearby radius in meters (geofence.nearbyDefaultMeters when zero)")
	_ = geofenceCheckCmd.MarkFlagRequired("lat")
	_ = geofenceCheckCmd.MarkFlagRequired("lng")

	geofenceCmd.AddCommand(geofenceListCmd, geofenceCheckCmd)
}

// geofenceOptions wires the geofence use case over an in-process index and snapshot.
func geofenceOptions() fx.Option {
	return fx.Provide(
		postgres.NewGeofenceRepository,
		cache.NewMemorySnapshotCache,
		geofence.NewIndex,
		impl.NewGeofenceService,
	)
}

func runGeofenceList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	var geofences usecase.GeofenceUsecase
	stop, err := startApp(ctx, geofenceOptions(), &geofences)
	if err != nil {
		return err
	}
	defer stop()

	fences, err := geofences.List(ctx, listAll)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), fences, func(w io.Writer) {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tKIND\tCENTER\tRADIUS(m)\tACTIVE")
		for _, f := range fences {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.6f,%.6f\t%.0f\t%t\n",
				f.ID, f.Name, fenceKind(f), f.Center.Latitude, f.Center.Longitude, f.RadiusMeters, f.Active)
		}
		_ = tw.Flush()
	})
}

func runGeofenceCheck(cmd *cobra.Command, _ []string) error {
	ctx, cancel := commandContext(cmd)
	defer cancel()

	point := entity.Coordinate{Latitude: checkLat, Longitude: checkLng}
	if !point.IsValid() {
		return fmt.Errorf("coordinate out of range: (%f, %f)", checkLat, checkLng)
	}

	var geofences usecase.GeofenceUsecase
	stop, err := startApp(ctx, geofenceOptions(), &geofences)
	if err != nil {
		return err
	}
	defer stop()

	if err := geofences.Refresh(ctx); err != nil {
		return err
	}
	result, err := geofences.Check(ctx, point, checkRadius)
	if err != nil {
		return err
	}

	return printResult(cmd.OutOrStdout(), result, func(w io.Writer) {
		fmt.Fprintf(w, "in safe zone: %t\nin danger zone: %t\n", result.InSafeZone, result.InDanger)
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tKIND\tDISTANCE(m)\tINSIDE")
		for _, m := range result.Nearby {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f\t%t\n",
				m.Fence.ID, m.Fence.Name, fenceKind(m.Fence), m.DistanceMeters, m.IsInside)
		}
		_ = tw.Flush()
	})
}

func fenceKind(f *entity.Geofence) string {
	if f.Safe {
		return "safe"
	}

	return "danger"
}
