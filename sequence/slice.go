// Copyright 2013 Travis Keep. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file or
// at http://opensource.org/licenses/BSD-3-Clause.

package sequence

// Slice returns a Stream that will emit digits in s starting at index start
// and continuing to but not including index end. Indexes are 0 based. If end
// is negative, it means go to the end of s. Calling Close on returned Stream
// closes s. When end of returned Stream is reached, it closes s if it has not
// consumed s returning any Close error through Next.
func Slice(s Stream, start int, end int) Stream {
	return &sliceStream{stream: s, skip: start, left: end - start, bounded: end >= 0}
}

type sliceStream struct {
	stream  Stream
	skip    int
	left    int
	bounded bool
	done    bool
}

func (s *sliceStream) Next(ptr *byte) error {
	if s.done {
		return Done
	}
	if s.bounded && s.left <= 0 {
		if err := s.Close(); err != nil {
			return err
		}
		return Done
	}
	for ; s.skip > 0; s.skip-- {
		if err := s.stream.Next(ptr); err != nil {
			return s.fail(err)
		}
	}
	if err := s.stream.Next(ptr); err != nil {
		return s.fail(err)
	}
	s.left--
	return nil
}

func (s *sliceStream) fail(err error) error {
	if err == Done {
		s.done = true
	}
	return err
}

func (s *sliceStream) Close() error {
	s.done = true
	if s.stream == nil {
		return nil
	}
	if err := s.stream.Close(); err != nil {
		return err
	}
	s.stream = nil
	return nil
}
