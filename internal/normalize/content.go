package normalize

import "github.com/jcortez/linkharvest/internal/types"

// Classify resolves the raw attachment signals into exactly one content type.
// When several signals are set at once the priority order
// Document > Video > Image > Text decides. The media URL is taken only from
// the winning signal.
func Classify(sig types.AttachmentSignal) (contentType types.ContentType, mediaURL string, hasDocument bool) {
	switch {
	case sig.HasDocument:
		return types.ContentDocument, sig.DocumentURL, true
	case sig.HasVideo:
		return types.ContentVideo, sig.VideoURL, false
	case sig.HasImage:
		return types.ContentImage, sig.ImageURL, false
	default:
		return types.ContentText, "", false
	}
}
