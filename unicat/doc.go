/*
Package unicat classifies Unicode code-points into simple categories.

Entity matchers do not need the full set of Unicode general categories.
They only have to decide whether a code-point is part of a word, a number
or a separator. Package unicat therefore maps every code-point to one of
five simple categories:

   Unknown        anything not covered below
   Letter         general categories Lu, Ll, Lt, Lm, Lo
   DecimalNumber  general category Nd
   Number         general categories Nl, No
   Separator      general categories Zs, Zl, Zp

The classification is intentionally coarse. Combining marks, punctuation,
symbols and unassigned code-points are Unknown. Matchers which need to
accept some of these (e.g., hashtags) special-case them on top of unicat.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package unicat
