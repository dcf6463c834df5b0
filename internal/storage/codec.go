package storage

import "strings"

var outputCodecs = map[string]string{
	"NONE":   "none",
	"GZIP":   "gz",
	"LZO":    "lzo",
	"SNAPPY": "snappy",
}

// CodecArgs maps the configured output compression onto S3DistCp's
// --outputCodec flag. An unset compression means no codec.
func CodecArgs(compression *string) []string {
	codec := "none"
	if compression != nil && *compression != "" {
		if c, ok := outputCodecs[strings.ToUpper(*compression)]; ok {
			codec = c
		} else {
			codec = strings.ToLower(*compression)
		}
	}
	return []string{"--outputCodec", codec}
}
