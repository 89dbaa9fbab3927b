package alert

// Resource refers to an additional file with supplemental information
type Resource struct {
	ResourceDesc string  `json:"resourceDesc,omitempty" yaml:"resourceDesc,omitempty"`
	MimeType     string  `json:"mimeType,omitempty" yaml:"mimeType,omitempty"`
	Size         *uint64 `json:"size,omitempty" yaml:"size,omitempty"`
	URI          string  `json:"uri,omitempty" yaml:"uri,omitempty"`
	DerefURI     string  `json:"derefUri,omitempty" yaml:"derefUri,omitempty"`
	Digest       string  `json:"digest,omitempty" yaml:"digest,omitempty"`
}

func (p *parser) readResource() (r Resource, err error) {
	const tag = "resource"
	err = p.readElement(tag, func(local string) error {
		switch local {
		case "resourceDesc":
			return p.readString(local, &r.ResourceDesc)
		case "mimeType":
			return p.readString(local, &r.MimeType)
		case "size":
			size, err := p.readUint(local)
			if size != nil {
				r.Size = size
			}
			return err
		case "uri":
			return p.readString(local, &r.URI)
		case "derefUri":
			return p.readString(local, &r.DerefURI)
		case "digest":
			return p.readString(local, &r.Digest)
		}
		return p.tagNotRecognised(tag, local)
	})
	return r, err
}
