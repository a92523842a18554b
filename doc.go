// Package mofassist embeds the MOF-LabAssist Lite advisor in a Go program
// without running the HTTP service.
//
// The client exposes the same three tools as the API:
//   - Forward: application to ranked candidate materials
//   - Inverse: material to suggested applications
//   - Chat: keyword hints for the two flows above
//
// # Usage
//
//	client, _ := mofassist.New(mofassist.WithLogger(slog.Default()))
//	cands, _ := client.Forward(ctx, "CO2_capture", &mofassist.Constraints{
//	    SelectivityMin: mofassist.Float(25),
//	})
//	apps, _ := client.Inverse(ctx, "HKUST-1")
//	reply, _ := client.Chat(ctx, "what about co2?")
package mofassist
