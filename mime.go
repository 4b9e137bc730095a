package main

import (
	"mime"

	log "github.com/sirupsen/logrus"
	mimedb "gitlab.com/gitlab-org/go-mimedb"
)

// extensions missing from the shared mime database
var extraMIMETypes = map[string]string{
	".avif": "image/avif",
}

func loadMIMETypes() {
	if err := mimedb.LoadTypes(); err != nil {
		log.WithError(err).Warn("could not load mime types database")
	}

	for ext, mimeType := range extraMIMETypes {
		if err := mime.AddExtensionType(ext, mimeType); err != nil {
			log.WithError(err).Errorf("failed to add extension %q with MIME type %q", ext, mimeType)
		}
	}
}
