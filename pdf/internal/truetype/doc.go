/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype loads truetype fonts for metric extraction and embedding in PDF.
// Only the tables needed for horizontal layout are decoded: head, maxp, hhea, hmtx, loca, glyf
// (glyph bounding boxes), cmap, kern, name, OS/2 and post.
package truetype
