package fetch

import (
	"context"

	"github.com/pkg/errors"
	"github.com/relloyd/mtgpipe/aws/s3"
)

// S3Source reads the archive from an S3 object.
type S3Source struct {
	Object s3.AwsS3Object
	Client s3.Getter
}

func NewS3Source(url string, region string) (*S3Source, error) {
	o, err := s3.ParseDSN(url, region)
	if err != nil {
		return nil, err
	}
	c, err := s3.NewBasicClient(o.Bucket, o.Region)
	if err != nil {
		return nil, errors.Wrap(err, "error creating S3 session")
	}
	return &S3Source{Object: o, Client: c}, nil
}

func (s *S3Source) String() string {
	return s.Object.String()
}

func (s *S3Source) ReadArchive(ctx context.Context) ([]byte, error) {
	data, err := s.Client.Get(ctx, s.Object.Key)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", s.Object)
	}
	return data, nil
}
