// Package mkvmerge wraps the two mkvmerge invocations mkvswap needs:
// JSON identification (mkvmerge -J) and the remux that rewrites per-track
// default flags.
//
// ffprobe and mkvmerge number tracks differently. MapAudioTrackID bridges
// the two domains by pairing ffprobe's audio stream position with the
// container-order position of mkvmerge's audio tracks.
package mkvmerge
