package normalize

import (
	"testing"

	"github.com/jcortez/linkharvest/internal/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		sig      types.AttachmentSignal
		wantType types.ContentType
		wantURL  string
		wantDoc  bool
	}{
		{
			name:     "no signals",
			sig:      types.AttachmentSignal{},
			wantType: types.ContentText,
		},
		{
			name:     "image",
			sig:      types.AttachmentSignal{HasImage: true, ImageURL: "https://cdn.example.com/a.jpg"},
			wantType: types.ContentImage,
			wantURL:  "https://cdn.example.com/a.jpg",
		},
		{
			name:     "video",
			sig:      types.AttachmentSignal{HasVideo: true, VideoURL: "https://cdn.example.com/v.mp4"},
			wantType: types.ContentVideo,
			wantURL:  "https://cdn.example.com/v.mp4",
		},
		{
			name:     "document",
			sig:      types.AttachmentSignal{HasDocument: true, DocumentURL: "https://cdn.example.com/d.pdf"},
			wantType: types.ContentDocument,
			wantURL:  "https://cdn.example.com/d.pdf",
			wantDoc:  true,
		},
		{
			name: "document wins over image",
			sig: types.AttachmentSignal{
				HasDocument: true,
				HasImage:    true,
				ImageURL:    "https://cdn.example.com/a.jpg",
			},
			wantType: types.ContentDocument,
			wantDoc:  true,
		},
		{
			name: "video wins over image",
			sig: types.AttachmentSignal{
				HasVideo: true,
				HasImage: true,
				VideoURL: "https://cdn.example.com/v.mp4",
				ImageURL: "https://cdn.example.com/a.jpg",
			},
			wantType: types.ContentVideo,
			wantURL:  "https://cdn.example.com/v.mp4",
		},
		{
			name:     "image signal without url",
			sig:      types.AttachmentSignal{HasImage: true},
			wantType: types.ContentImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotURL, gotDoc := Classify(tt.sig)
			if gotType != tt.wantType || gotURL != tt.wantURL || gotDoc != tt.wantDoc {
				t.Errorf("Classify(%+v) = (%s, %q, %v), want (%s, %q, %v)",
					tt.sig, gotType, gotURL, gotDoc, tt.wantType, tt.wantURL, tt.wantDoc)
			}
		})
	}
}
